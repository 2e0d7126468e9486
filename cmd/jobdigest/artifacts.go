package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"jobdigest/internal/artifacts"
	"jobdigest/internal/github"
	"jobdigest/internal/ingest/util"
	"jobdigest/internal/logger"
	"jobdigest/internal/secrets"
)

var (
	artifactsRepo  string
	artifactsIssue int
)

var artifactsCmd = &cobra.Command{
	Use:   "artifacts",
	Short: "Generate application artifacts for a digest issue, posting at most once",
	RunE:  runArtifacts,
}

func init() {
	artifactsCmd.Flags().StringVar(&artifactsRepo, "repo", "", "target repository as owner/name (default: REPO env)")
	artifactsCmd.Flags().IntVar(&artifactsIssue, "issue", 0, "trigger issue number (default: ISSUE_NUMBER env)")
	rootCmd.AddCommand(artifactsCmd)
}

func runArtifacts(cmd *cobra.Command, args []string) error {
	log := logger.Get()

	// Missing credentials or trigger identity is fatal before any side effect.
	repo := artifactsRepo
	if repo == "" {
		repo = os.Getenv("REPO")
	}
	if repo == "" {
		return fmt.Errorf("repository not set (--repo or REPO env)")
	}

	issue := artifactsIssue
	if issue == 0 {
		if v := os.Getenv("ISSUE_NUMBER"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("parse ISSUE_NUMBER %q: %w", v, err)
			}
			issue = n
		}
	}
	if issue <= 0 {
		return fmt.Errorf("trigger issue not set (--issue or ISSUE_NUMBER env)")
	}

	token, err := secrets.GetGitHubToken()
	if err != nil {
		return err
	}

	lock, err := acquireRunLock()
	if err != nil {
		return err
	}
	defer lock.Unlock()

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runner := &artifacts.Runner{
		GH:      github.NewClient(token),
		Fetcher: artifacts.NewJDFetcher(util.NewHostLimiter(cfg.Limits.RequestsPerSecond, cfg.Limits.Burst)),
		Profile: cfg.Profile,
		Log:     log,
	}
	return runner.Run(ctx, repo, issue)
}
