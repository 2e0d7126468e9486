package digest

import (
	"regexp"
	"strings"

	"jobdigest/internal/domain"
)

var applyURLRe = regexp.MustCompile(`\((https?://[^)]+)\)`)

// Parse recovers digest rows from arbitrary surrounding text, e.g. an issue
// body the digest was pasted into. It trusts only the block starting at the
// first pipe-prefixed line carrying the Title/Company/Link header tokens,
// skips the separator line under it, and consumes pipe-prefixed rows until
// the first line that is not one. No table means zero rows, not an error;
// the caller decides what "nothing to do" means.
func Parse(text string) []domain.DigestRow {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(ln); t != "" {
			lines = append(lines, t)
		}
	}

	start := -1
	for i, ln := range lines {
		if strings.HasPrefix(ln, "|") &&
			strings.Contains(ln, "Title") &&
			strings.Contains(ln, "Company") &&
			strings.Contains(ln, "Link") {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}

	var rows []domain.DigestRow
	for _, ln := range lines[min(start+2, len(lines)):] {
		if !strings.HasPrefix(ln, "|") {
			break
		}
		cols := splitRow(ln)
		if len(cols) < 7 {
			// malformed row, drop silently
			continue
		}

		applyURL := ""
		if m := applyURLRe.FindStringSubmatch(cols[6]); m != nil {
			applyURL = m[1]
		}

		rows = append(rows, domain.DigestRow{
			Score:       cols[0],
			Sponsorship: cols[1],
			Title:       cols[2],
			Company:     cols[3],
			Source:      cols[4],
			Location:    cols[5],
			ApplyURL:    applyURL,
		})
	}
	return rows
}

func splitRow(ln string) []string {
	ln = strings.Trim(ln, "|")
	parts := strings.Split(ln, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
