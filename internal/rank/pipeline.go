package rank

import (
	"sort"
	"strings"

	"jobdigest/internal/classify"
	"jobdigest/internal/domain"
)

// Options carries the configuration slice each gate needs. Callers build it
// from config; nothing in this package reads process-wide state.
type Options struct {
	TitleRule          classify.TitleRule
	InternshipKeywords []string
	RoleKeywords       []string
	Locations          []string

	// RejectIfNoSponsorship drops postings whose text contains explicit
	// no-sponsorship language. UNKNOWN is never dropped.
	RejectIfNoSponsorship bool

	MinScore       int
	MaxResults     int
	KeywordPhrases []string
}

// Summary counts what each gate dropped, for the run log. Informational
// only, not part of any consumed contract.
type Summary struct {
	Fetched            int
	DroppedTitle       int
	DroppedInternWords int
	DroppedRole        int
	DroppedLocation    int
	DroppedSponsorship int
	DroppedScore       int
	Kept               int
}

// Rank runs every posting through the gate sequence, scores the survivors,
// and returns them sorted best-first and capped at MaxResults. Gates
// short-circuit cheapest-first; a posting failing one gate never reaches the
// next, and no posting can abort processing of the others.
//
// The same role fetched from two sources ranks twice: there is no
// cross-source dedup. If that ever changes, the natural key is a
// fingerprint of normalized title+company+location.
func Rank(postings []domain.Posting, opts Options) ([]domain.ScoredCandidate, Summary) {
	sum := Summary{Fetched: len(postings)}

	var kept []domain.ScoredCandidate
	for _, p := range postings {
		text := p.TextForRole()

		if !opts.TitleRule.IsInternTitle(p.Title) {
			sum.DroppedTitle++
			continue
		}
		if !classify.ContainsAny(text, opts.InternshipKeywords) {
			sum.DroppedInternWords++
			continue
		}
		if !classify.ContainsAny(text, opts.RoleKeywords) {
			sum.DroppedRole++
			continue
		}
		if !locationOK(p.Location, opts.Locations) {
			sum.DroppedLocation++
			continue
		}

		sponsor := classify.SponsorshipStatus(text)
		if opts.RejectIfNoSponsorship && sponsor == domain.SponsorshipNo {
			sum.DroppedSponsorship++
			continue
		}

		score := MatchScore(p, opts.KeywordPhrases)
		if score < opts.MinScore {
			sum.DroppedScore++
			continue
		}

		kept = append(kept, domain.ScoredCandidate{
			Posting:     p,
			Score:       score,
			Sponsorship: sponsor,
		})
	}

	// Best score first; equal scores order by normalized title, descending,
	// so output is deterministic regardless of source arrival order.
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Score != kept[j].Score {
			return kept[i].Score > kept[j].Score
		}
		return classify.Normalize(kept[i].Posting.Title) > classify.Normalize(kept[j].Posting.Title)
	})

	if opts.MaxResults > 0 && len(kept) > opts.MaxResults {
		kept = kept[:opts.MaxResults]
	}
	sum.Kept = len(kept)
	return kept, sum
}

// locationOK passes when no locations are configured, when any configured
// location matches the posting location (substring or state-abbreviation
// token, see matchesLocation), or when both sides mention "remote".
func locationOK(postingLoc string, locations []string) bool {
	if len(locations) == 0 {
		return true
	}
	loc := classify.Normalize(postingLoc)
	for _, l := range locations {
		if matchesLocation(loc, l) {
			return true
		}
	}
	if strings.Contains(loc, "remote") {
		for _, l := range locations {
			if strings.Contains(classify.Normalize(l), "remote") {
				return true
			}
		}
	}
	return false
}
