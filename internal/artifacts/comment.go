package artifacts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobdigest/internal/config"
	"jobdigest/internal/domain"
)

// Marker is the idempotency token. Every comment this stage posts starts
// with it; finding it in any existing comment means the stage already ran
// for that trigger.
const Marker = "<!-- JOBDIGEST_ARTIFACTS_V1 -->"

// BuildComment assembles the single reply body: the marker, then one titled
// section per digest row with apply link, JD capture status, resume bullets,
// and cover letter. fetchJD is called once per row and may return "".
func BuildComment(ctx context.Context, rows []domain.DigestRow, profile config.Profile, now time.Time, fetchJD func(context.Context, string) string) string {
	parts := []string{
		Marker,
		fmt.Sprintf("## Application Artifacts (auto-generated)\nGenerated: **%s**\n", now.UTC().Format("2006-01-02 15:04 UTC")),
		"This comment contains **paste-ready** resume bullets and a short cover letter draft per job.\n",
	}

	for _, row := range rows {
		jd := ""
		if fetchJD != nil {
			jd = fetchJD(ctx, row.ApplyURL)
		}

		parts = append(parts, "---")
		parts = append(parts, fmt.Sprintf("### %s — %s", row.Company, row.Title))
		if row.ApplyURL != "" {
			parts = append(parts, "- Apply link: "+row.ApplyURL)
		} else {
			parts = append(parts, "- Apply link: (missing)")
		}
		if jd != "" {
			parts = append(parts, "- JD captured: Yes (excerpted)")
		} else {
			parts = append(parts, "- JD captured: No (used robust defaults)")
		}

		parts = append(parts, "")
		parts = append(parts, ResumeBullets(row.Title, row.Company, jd))
		parts = append(parts, "")
		parts = append(parts, CoverLetter(row.Title, row.Company, jd, profile))
		parts = append(parts, "")
	}

	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// BuildNoTableComment is the reply for a trigger whose body carries no
// recognizable digest table. Marker-prefixed like any other reply, so the
// guard still fires on reruns.
func BuildNoTableComment() string {
	return Marker + "\n" +
		"## Application Artifacts\n" +
		"No jobs table found in the issue body. " +
		"Ensure the digest includes a markdown table with columns including **Title**, **Company**, and an **Apply** link.\n"
}
