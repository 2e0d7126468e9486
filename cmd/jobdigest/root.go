package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"jobdigest/internal/config"
	"jobdigest/internal/logger"
)

var (
	cfgPath      string
	keywordsPath string
	dataDir      string
)

var rootCmd = &cobra.Command{
	Use:   "jobdigest",
	Short: "Internship digest and application artifact engine",
	Long: "jobdigest pulls internship postings from ATS boards, ranks them against\n" +
		"a candidate profile, writes a markdown digest, and turns a posted digest\n" +
		"into per-job application artifacts exactly once per trigger issue.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init()
		if dataDir == "" {
			dataDir = os.Getenv("JOBDIGEST_DATA_DIR")
		}
		if dataDir == "" {
			dataDir = "."
		}
		return os.MkdirAll(dataDir, 0o755)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: <data-dir>/config.yml, seeded from config/config.yml)")
	rootCmd.PersistentFlags().StringVarP(&keywordsPath, "keywords", "k", "", "path to scoring keywords file (default: <data-dir>/keywords.txt)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default: JOBDIGEST_DATA_DIR env or .)")
}

// loadConfig resolves the config and keyword paths, seeding user copies of
// the shipped defaults into the data dir on first run.
func loadConfig() (config.Config, []string, error) {
	path := cfgPath
	if path == "" {
		var err error
		path, err = config.EnsureUserFile(dataDir, "config.yml", filepath.Join("config", "config.yml"))
		if err != nil {
			return config.Config{}, nil, fmt.Errorf("config bootstrap: %w", err)
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, nil, err
	}

	kwPath := keywordsPath
	if kwPath == "" {
		kwPath, err = config.EnsureUserFile(dataDir, "keywords.txt", filepath.Join("config", "keywords.txt"))
		if err != nil {
			return config.Config{}, nil, fmt.Errorf("keywords bootstrap: %w", err)
		}
	}
	keywords, err := config.LoadKeywords(kwPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, keywords, nil
}

// acquireRunLock serializes side-effecting commands on one data dir. The
// artifact guard is read-then-post, so two concurrent invocations on the
// same machine must not interleave.
func acquireRunLock() (*flock.Flock, error) {
	lock := flock.New(filepath.Join(dataDir, "jobdigest.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another jobdigest run holds the lock in %s", dataDir)
	}
	return lock, nil
}
