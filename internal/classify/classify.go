package classify

import (
	"regexp"
	"strings"

	"jobdigest/internal/domain"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize collapses runs of whitespace to a single space and lowercases.
// Every text heuristic in the pipeline matches against this form.
func Normalize(s string) string {
	return strings.ToLower(whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " "))
}

// ContainsAny reports whether any needle occurs as a substring of hay,
// comparing normalized forms. Empty needles never match.
func ContainsAny(hay string, needles []string) bool {
	h := Normalize(hay)
	for _, n := range needles {
		k := Normalize(n)
		if k != "" && strings.Contains(h, k) {
			return true
		}
	}
	return false
}

// Rejection phrases are checked first and short-circuit: a posting quoting
// both "no sponsorship" and "visa sponsorship" classifies as NO.
var noSponsorshipPatterns = []string{
	"no sponsorship",
	"unable to sponsor",
	"cannot sponsor",
	"will not sponsor",
	"not sponsor",
	"without sponsorship",
	"no visa sponsorship",
	"do not sponsor",
	"not eligible for sponsorship",
	"us citizen only",
	"u.s. citizen only",
	"must be a u.s. citizen",
	"must be us citizen",
	"security clearance required",
}

var yesSponsorshipPatterns = []string{
	"visa sponsorship",
	"sponsorship available",
	"eligible for sponsorship",
	"will sponsor",
	"can sponsor",
	"accept opt",
}

// SponsorshipStatus infers the visa stance from posting text. Only explicit
// rejection language yields NO; silence yields UNKNOWN, which is kept for
// review rather than treated as a rejection.
func SponsorshipStatus(text string) domain.Sponsorship {
	t := Normalize(text)
	for _, p := range noSponsorshipPatterns {
		if strings.Contains(t, p) {
			return domain.SponsorshipNo
		}
	}
	for _, p := range yesSponsorshipPatterns {
		if strings.Contains(t, p) {
			return domain.SponsorshipYes
		}
	}
	return domain.SponsorshipUnknown
}

// DefaultInternMarkers match as case-insensitive substrings of the title.
var DefaultInternMarkers = []string{"intern", "co-op", "coop", "student"}

// DefaultSeniorMarkers match as whole words only, so "Maintenance Intern"
// is not rejected on a substring collision.
var DefaultSeniorMarkers = []string{"senior", "staff", "principal", "lead", "director", "manager"}

// TitleRule decides whether a title reads as an internship role: at least
// one intern marker as a substring, and no seniority marker as a whole word.
type TitleRule struct {
	interns []string
	seniors []*regexp.Regexp
}

func NewTitleRule(internMarkers, seniorMarkers []string) TitleRule {
	r := TitleRule{}
	for _, m := range internMarkers {
		if k := Normalize(m); k != "" {
			r.interns = append(r.interns, k)
		}
	}
	for _, m := range seniorMarkers {
		k := Normalize(m)
		if k == "" {
			continue
		}
		r.seniors = append(r.seniors, regexp.MustCompile(`\b`+regexp.QuoteMeta(k)+`\b`))
	}
	return r
}

func (r TitleRule) IsInternTitle(title string) bool {
	t := Normalize(title)
	hit := false
	for _, m := range r.interns {
		if strings.Contains(t, m) {
			hit = true
			break
		}
	}
	if !hit {
		return false
	}
	for _, re := range r.seniors {
		if re.MatchString(t) {
			return false
		}
	}
	return true
}
