// Package ingest runs the source adapters and collects their postings.
// Each source is best-effort: a board being down costs that board's
// postings, never the run.
package ingest

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"jobdigest/internal/domain"
)

// Fetcher is a source adapter. Fetch returns fully normalized postings;
// nothing downstream re-inspects raw source records.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.Posting, error)
}

// FetchTimeout bounds a single source; a stuck board cannot stall the run.
const FetchTimeout = 2 * time.Minute

// Run fans out over the fetchers concurrently and merges their postings.
// Source failures are logged at warn level and contribute zero postings.
// Merge order follows completion order; ranking sorts later, so the final
// output does not depend on it.
func Run(ctx context.Context, fetchers []Fetcher, log zerolog.Logger) []domain.Posting {
	results := make(chan []domain.Posting, len(fetchers))

	var g errgroup.Group
	for _, f := range fetchers {
		f := f
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, FetchTimeout)
			defer cancel()

			postings, err := f.Fetch(fctx)
			if err != nil {
				log.Warn().Str("source", f.Name()).Err(err).Msg("source fetch failed, continuing without it")
				return nil
			}
			log.Info().Str("source", f.Name()).Int("postings", len(postings)).Msg("source fetched")
			results <- postings
			return nil
		})
	}
	_ = g.Wait()
	close(results)

	var all []domain.Posting
	for batch := range results {
		all = append(all, batch...)
	}
	return all
}
