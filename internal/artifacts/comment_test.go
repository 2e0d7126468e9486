package artifacts

import (
	"context"
	"strings"
	"testing"
	"time"

	"jobdigest/internal/domain"
)

func testRows() []domain.DigestRow {
	return []domain.DigestRow{
		{Score: "96", Sponsorship: "YES", Title: "ML Intern", Company: "acme", Source: "Greenhouse", Location: "Remote", ApplyURL: "https://x.test/1"},
		{Score: "80", Sponsorship: "UNKNOWN", Title: "Data Intern", Company: "globex", Source: "Lever", Location: "Austin, TX"},
	}
}

func TestBuildComment(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	fetch := func(ctx context.Context, url string) string {
		if url == "https://x.test/1" {
			return "captured jd text"
		}
		return ""
	}

	out := BuildComment(context.Background(), testRows(), testProfile, now, fetch)

	if !strings.HasPrefix(out, Marker) {
		t.Fatal("comment must start with the idempotency marker")
	}
	for _, want := range []string{
		"### acme — ML Intern",
		"- Apply link: https://x.test/1",
		"- JD captured: Yes (excerpted)",
		"### globex — Data Intern",
		"- Apply link: (missing)",
		"- JD captured: No (used robust defaults)",
		"**Resume bullets (paste-ready)",
		"**Cover letter draft",
		"2026-08-31 09:30 UTC",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("comment missing %q", want)
		}
	}
	if got := strings.Count(out, "### "); got != 2 {
		t.Errorf("want one titled section per row, got %d", got)
	}
}

func TestBuildCommentNilFetcher(t *testing.T) {
	out := BuildComment(context.Background(), testRows(), testProfile, time.Now(), nil)
	if !strings.Contains(out, "- JD captured: No (used robust defaults)") {
		t.Error("nil fetcher must behave as empty JD capture")
	}
}

func TestBuildNoTableComment(t *testing.T) {
	out := BuildNoTableComment()
	if !strings.HasPrefix(out, Marker) {
		t.Fatal("no-table comment must start with the marker so reruns still no-op")
	}
	if !strings.Contains(out, "No jobs table found") {
		t.Errorf("got %q", out)
	}
}
