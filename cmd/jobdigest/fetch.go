package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"jobdigest/internal/classify"
	"jobdigest/internal/digest"
	"jobdigest/internal/ingest"
	"jobdigest/internal/ingest/greenhouse"
	"jobdigest/internal/ingest/lever"
	"jobdigest/internal/ingest/util"
	"jobdigest/internal/logger"
	"jobdigest/internal/rank"
	"jobdigest/internal/stats"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch postings, rank them, and write the digest",
	RunE:  runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	log := logger.Get()

	lock, err := acquireRunLock()
	if err != nil {
		return err
	}
	defer lock.Unlock()

	cfg, keywords, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	limiter := util.NewHostLimiter(cfg.Limits.RequestsPerSecond, cfg.Limits.Burst)

	var fetchers []ingest.Fetcher
	if cfg.Sources.Greenhouse.Enabled {
		fetchers = append(fetchers, greenhouse.New(greenhouse.Config{Boards: cfg.Sources.Greenhouse.Boards}, limiter, log))
	}
	if cfg.Sources.Lever.Enabled {
		fetchers = append(fetchers, lever.New(lever.Config{Companies: cfg.Sources.Lever.Companies}, limiter, log))
	}

	postings := ingest.Run(ctx, fetchers, log)

	cands, sum := rank.Rank(postings, rank.Options{
		TitleRule:             classify.NewTitleRule(cfg.Filters.InternTitleMarkers, cfg.Filters.SeniorTitleMarkers),
		InternshipKeywords:    cfg.Filters.InternshipTypeKeywords,
		RoleKeywords:          cfg.Filters.RoleKeywords,
		Locations:             cfg.Filters.Locations,
		RejectIfNoSponsorship: cfg.Filters.RejectIfNoSponsorship,
		MinScore:              cfg.Scoring.MinMatchScore,
		MaxResults:            cfg.Scoring.MaxResults,
		KeywordPhrases:        keywords,
	})

	log.Info().
		Int("fetched", sum.Fetched).
		Int("dropped_title", sum.DroppedTitle).
		Int("dropped_intern_words", sum.DroppedInternWords).
		Int("dropped_role", sum.DroppedRole).
		Int("dropped_location", sum.DroppedLocation).
		Int("dropped_sponsorship", sum.DroppedSponsorship).
		Int("dropped_score", sum.DroppedScore).
		Int("kept", sum.Kept).
		Msg("pipeline summary")

	md := digest.Render(cands, digest.Meta{
		GeneratedAt:           time.Now(),
		MinScore:              cfg.Scoring.MinMatchScore,
		MaxResults:            cfg.Scoring.MaxResults,
		Locations:             cfg.Filters.Locations,
		RejectIfNoSponsorship: cfg.Filters.RejectIfNoSponsorship,
	})

	outPath := filepath.Join(dataDir, "digest.md")
	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		return err
	}
	log.Info().Str("path", outPath).Int("matches", len(cands)).Msg("wrote digest")

	// Stats are best-effort observability; a broken store never fails the run.
	st, err := stats.Open(filepath.Join(dataDir, "jobdigest.db"))
	if err != nil {
		log.Warn().Err(err).Msg("stats store unavailable")
		return nil
	}
	defer st.Close()
	if err := st.RecordRun(ctx, len(cands), "daily_digest"); err != nil {
		log.Warn().Err(err).Msg("stats record failed")
	}
	return nil
}
