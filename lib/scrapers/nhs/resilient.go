package nhs

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/codes"
)

// Resilient is the pipeline's uniform failure boundary: it invokes op and
// converts any fetch or parse error into the fallback value after logging a
// diagnostic. One malformed page degrades its own result to empty instead of
// aborting the run.
func Resilient[T any](ctx context.Context, name string, fallback T, op func(ctx context.Context) (T, error)) T {
	ctx, span := tracer.Start(ctx, name)
	defer span.End()

	result, err := op(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "degraded to fallback")
		slog.WarnContext(ctx, "continuing with empty result", "op", name, "err", err)
		return fallback
	}
	return result
}
