// Package digest implements the tabular wire format between the ranking
// pipeline and the artifact stage. Render and Parse form a closed contract:
// anything Render produces, Parse recovers row-for-row, up to the
// separator-character sanitization and score becoming text.
package digest

import (
	"fmt"
	"strings"
	"time"

	"jobdigest/internal/domain"
)

// Meta is the run context printed above the table.
type Meta struct {
	GeneratedAt           time.Time
	MinScore              int
	MaxResults            int
	Locations             []string
	RejectIfNoSponsorship bool
}

const (
	header    = "| Score | Sponsorship | Title | Company | Source | Location | Link |"
	separator = "|---:|:---:|---|---|---|---|---|"
)

// Render serializes ranked candidates to the markdown digest. An empty list
// renders a no-matches notice instead of a bare table; that is a valid
// output the parser maps back to zero rows.
func Render(cands []domain.ScoredCandidate, meta Meta) string {
	var b strings.Builder
	b.WriteString("# Daily AI Internship Digest\n\n")
	fmt.Fprintf(&b, "Generated: **%s**\n\n", meta.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"))

	policy := "reject if explicit NO; silent = review"
	if !meta.RejectIfNoSponsorship {
		policy = "keep all; silent = review"
	}
	locs := "any"
	if len(meta.Locations) > 0 {
		locs = strings.Join(meta.Locations, " + ")
	}
	fmt.Fprintf(&b, "Filters: score >= **%d**, max **%d**, locations: **%s**, sponsorship: **%s**\n\n",
		meta.MinScore, meta.MaxResults, locs, policy)
	b.WriteString("---\n\n")

	if len(cands) == 0 {
		b.WriteString("No matching postings today. Check back after the next run.\n")
		return b.String()
	}

	b.WriteString(header + "\n")
	b.WriteString(separator + "\n")
	for _, c := range cands {
		p := c.Posting
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | [Apply](%s) |\n",
			c.Score,
			c.Sponsorship,
			sanitizeCell(p.Title),
			sanitizeCell(p.Company),
			sanitizeCell(p.Source),
			sanitizeCell(p.Location),
			p.URL,
		)
	}

	b.WriteString("\n---\n\n")
	b.WriteString("### Notes\n")
	b.WriteString("- **Sponsorship** is inferred from posting text. Explicit **no sponsorship / US citizen only / clearance required** language reads as NO.\n")
	b.WriteString("- Postings silent on sponsorship are marked **UNKNOWN** and kept for review.\n")
	return b.String()
}

// sanitizeCell keeps field values from breaking table structure. Lossy but
// safe: a literal pipe becomes a space.
func sanitizeCell(s string) string {
	return strings.ReplaceAll(s, "|", " ")
}
