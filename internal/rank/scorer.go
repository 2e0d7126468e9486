package rank

import (
	"strings"

	"jobdigest/internal/classify"
	"jobdigest/internal/domain"
)

// MatchScore counts distinct keyword-phrase hits in title+team+description
// and maps the count to 0..100. Pure function: the same posting and phrase
// set always yields the same score.
//
// The curve is linear at 8 points per hit up to the 100 cap, then overridden
// to 95 at 15+ hits and 100 at 20+ hits. 13 and 14 hits therefore score
// higher than 15; the curve is kept exactly as digest consumers expect it.
func MatchScore(p domain.Posting, keywordPhrases []string) int {
	t := classify.Normalize(p.Title + "\n" + p.Team + "\n" + p.Description)

	hits := 0
	seen := map[string]bool{}
	for _, kw := range keywordPhrases {
		k := classify.Normalize(kw)
		if k == "" || seen[k] {
			continue
		}
		if strings.Contains(t, k) {
			hits++
			seen[k] = true
		}
	}

	score := hits * 8
	if score > 100 {
		score = 100
	}
	if hits >= 15 {
		score = 95
	}
	if hits >= 20 {
		score = 100
	}
	return score
}
