package nhs

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResilientReturnsResult(t *testing.T) {
	result := Resilient(context.Background(), "ok op", []string(nil),
		func(ctx context.Context) ([]string, error) {
			return []string{"a", "b"}, nil
		})
	require.Equal(t, []string{"a", "b"}, result)
}

func TestResilientDegradesToFallback(t *testing.T) {
	result := Resilient(context.Background(), "failing op", []string(nil),
		func(ctx context.Context) ([]string, error) {
			return []string{"partial"}, fmt.Errorf("connection reset")
		})
	require.Nil(t, result)
}
