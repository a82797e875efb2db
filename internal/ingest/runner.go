package ingest

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/festa-kr/festa-api/internal/domain"
)

// Upserter applies one normalized record against the store.
type Upserter interface {
	Upsert(ctx context.Context, rec domain.ImportRecord) (domain.Festival, bool, error)
}

// PageFetcher yields API pages. Implemented by APIClient.
type PageFetcher interface {
	FetchPage(ctx context.Context, page, pageSize int) (APIPage, error)
}

// Result tallies one full import run.
type Result struct {
	Created int
	Updated int
	Skipped int
	Failed  int
}

func (r Result) Processed() int {
	return r.Created + r.Updated
}

// Runner drives a full import: it feeds every record of a source through
// the upsert engine, one record at a time, and accumulates counts.
type Runner struct {
	upserter Upserter
	log      *zap.Logger
}

func NewRunner(upserter Upserter) *Runner {
	return &Runner{
		upserter: upserter,
		log:      zap.L(),
	}
}

// RunAPI pages through the API until the requested page count, the
// computed total-page count, or an empty page, whichever comes first.
// A non-success result code aborts the whole run.
func (r *Runner) RunAPI(ctx context.Context, fetcher PageFetcher, pageSize, pages int) (Result, error) {
	var res Result

	page := 1
	totalCount := -1
	for {
		fetched, err := fetcher.FetchPage(ctx, page, pageSize)
		if err != nil {
			return res, fmt.Errorf("fetcher.FetchPage -> %w", err)
		}
		if fetched.ResultCode != ResultCodeSuccess {
			return res, fmt.Errorf("%w: %s %s", ErrSourceRejected, fetched.ResultCode, fetched.ResultMsg)
		}
		if totalCount < 0 {
			totalCount = fetched.TotalCount
		}
		if len(fetched.Records) == 0 {
			break
		}

		for _, rec := range fetched.Records {
			r.apply(ctx, rec, &res)
		}

		maxPages := page
		if pageSize > 0 && totalCount > 0 {
			maxPages = (totalCount + pageSize - 1) / pageSize
		}
		if pages > 0 && pages < maxPages {
			maxPages = pages
		}
		if page >= maxPages {
			break
		}
		page++
	}

	return res, nil
}

// RunCSV imports every row of the bulk CSV file at path, optionally capped
// at limit rows.
func (r *Runner) RunCSV(ctx context.Context, path string, limit int) (Result, error) {
	var res Result

	f, err := os.Open(path)
	if err != nil {
		return res, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	records, err := ReadCSVRecords(f, limit)
	if err != nil {
		return res, fmt.Errorf("ReadCSVRecords -> %w", err)
	}

	for _, rec := range records {
		r.apply(ctx, rec, &res)
	}

	return res, nil
}

func (r *Runner) apply(ctx context.Context, rec domain.ImportRecord, res *Result) {
	key := rec.IdentityKey()
	if key == "" {
		// No usable identity: the record cannot anchor an upsert.
		res.Skipped++
		r.log.Debug("skipping record with empty identity key", zap.String("title", rec.Title))
		return
	}

	_, created, err := r.upserter.Upsert(ctx, rec)
	if err != nil {
		res.Failed++
		r.log.Error("upsert failed", zap.String("key", key), zap.Error(err))
		return
	}
	if created {
		res.Created++
	} else {
		res.Updated++
	}
}
