package surgeries

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"gpfinder-backend/lib/scrapers/nhs"
	"gpfinder-backend/services/surgeries/db"

	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/surgeries")

const jitterMaxMs = 250

// Pipeline fetches one postcode's worth of surgery data: the directory
// listing, then sequentially each surgery's detail and reviews pages. Every
// page fetch waits a fixed delay (plus a little jitter) first, and every
// per-surgery extraction sits behind the resilience boundary so a bad page
// degrades its own record instead of aborting the run.
type Pipeline struct {
	Client *nhs.Client
	// raw page cache, may be nil to always hit the network
	Query *db.Queries
	Delay time.Duration
}

type RawDatasets struct {
	Listings []nhs.ListingRecord
	Details  []nhs.SurgeryDetail
	Reviews  []nhs.Review
}

func (p Pipeline) Run(ctx context.Context, postcode string) RawDatasets {
	ctx, span := tracer.Start(ctx, "pipeline:Run")
	defer span.End()

	var datasets RawDatasets

	p.wait(ctx)
	datasets.Listings = nhs.Resilient(ctx, "fetch gp listing", []nhs.ListingRecord(nil),
		func(ctx context.Context) ([]nhs.ListingRecord, error) {
			body, err := p.fetchPage(ctx, nhs.ListingUrl(postcode))
			if err != nil {
				return nil, err
			}
			return nhs.ParseListing(body)
		})

	slog.InfoContext(ctx, "found gp surgeries", "postcode", postcode, "count", len(datasets.Listings))

	for _, surgery := range datasets.Listings {
		slog.DebugContext(ctx, "scraping surgery", "id", surgery.Id, "name", surgery.Name)

		p.wait(ctx)
		detail := nhs.Resilient(ctx, "fetch surgery details",
			nhs.SurgeryDetail{OpeningTimes: map[string]string{}},
			func(ctx context.Context) (nhs.SurgeryDetail, error) {
				body, err := p.fetchPage(ctx, nhs.DetailUrl(surgery.NhsUrl))
				if err != nil {
					return nhs.SurgeryDetail{OpeningTimes: map[string]string{}}, err
				}
				return nhs.ParseDetail(body)
			})
		detail.Id = surgery.Id
		datasets.Details = append(datasets.Details, detail)

		p.wait(ctx)
		reviews := nhs.Resilient(ctx, "fetch surgery reviews", []nhs.Review(nil),
			func(ctx context.Context) ([]nhs.Review, error) {
				body, err := p.fetchPage(ctx, nhs.ReviewsUrl(surgery.NhsUrl))
				if err != nil {
					return nil, err
				}
				return nhs.ParseReviews(body)
			})
		for i := range reviews {
			reviews[i].Id = surgery.Id
		}
		datasets.Reviews = append(datasets.Reviews, reviews...)
	}

	return datasets
}

// fetchPage serves a page from the cache when possible, otherwise fetches it
// and caches the raw body so re-runs of the same postcode skip the network.
func (p Pipeline) fetchPage(ctx context.Context, url string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "pipeline:fetchPage")
	defer span.End()

	if p.Query != nil {
		body, err := p.Query.GetPage(ctx, url)
		if err == nil {
			span.SetStatus(codes.Ok, "CACHE HIT")
			return body, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			span.RecordError(err)
			slog.WarnContext(ctx, "failed to read page cache", "url", url, "err", err)
		}
	}

	body, err := p.Client.GetPage(ctx, url)
	if err != nil {
		return nil, err
	}

	if p.Query != nil {
		err := p.Query.PutPage(ctx, db.PutPageParams{
			Url:       url,
			FetchedAt: time.Now().Unix(),
			Body:      body,
		})
		if err != nil {
			span.RecordError(err)
			slog.WarnContext(ctx, "failed to cache page", "url", url, "err", err)
		}
	}

	return body, nil
}

// wait sleeps the fixed inter-request delay plus jitter, bounding the
// external request rate. Cancelling the context cuts the sleep short.
func (p Pipeline) wait(ctx context.Context) {
	if p.Delay <= 0 {
		return
	}

	delay := p.Delay
	jitter, err := random.IntRange(0, jitterMaxMs)
	if err == nil {
		delay += time.Duration(jitter) * time.Millisecond
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
