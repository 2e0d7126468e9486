// Package artifacts turns a posted digest back into per-job application
// material and replies to the triggering issue at most once.
package artifacts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"jobdigest/internal/config"
	"jobdigest/internal/digest"
	"jobdigest/internal/github"
)

type Runner struct {
	GH      *github.Client
	Fetcher *JDFetcher
	Profile config.Profile
	Log     zerolog.Logger
	Now     func() time.Time // defaults to time.Now
}

// Run executes the artifact stage for one trigger issue. The guard comes
// first: replies already containing the marker mean a previous run posted,
// and this one must no-op. Check-then-post is not atomic; the trigger
// mechanism is expected not to invoke the same issue concurrently.
func (r *Runner) Run(ctx context.Context, repo string, issue int) error {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	comments, err := r.GH.ListComments(ctx, repo, issue)
	if err != nil {
		return fmt.Errorf("list comments: %w", err)
	}
	for _, c := range comments {
		if strings.Contains(c.Body, Marker) {
			r.Log.Info().Str("repo", repo).Int("issue", issue).Msg("artifacts already posted for this issue, nothing to do")
			return nil
		}
	}

	iss, err := r.GH.Issue(ctx, repo, issue)
	if err != nil {
		return fmt.Errorf("get issue: %w", err)
	}

	rows := digest.Parse(iss.Body)

	var body string
	if len(rows) == 0 {
		r.Log.Warn().Str("repo", repo).Int("issue", issue).Msg("no digest table in issue body")
		body = BuildNoTableComment()
	} else {
		fetch := func(ctx context.Context, url string) string { return "" }
		if r.Fetcher != nil {
			fetch = r.Fetcher.FetchDescription
		}
		body = BuildComment(ctx, rows, r.Profile, now(), fetch)
	}

	if err := r.GH.CreateComment(ctx, repo, issue, body); err != nil {
		return fmt.Errorf("post comment: %w", err)
	}
	r.Log.Info().Str("repo", repo).Int("issue", issue).Int("jobs", len(rows)).Msg("posted artifacts comment")
	return nil
}
