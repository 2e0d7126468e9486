package rank

import (
	"strings"

	"jobdigest/internal/classify"
)

// stateAbbrevs lets a configured full state name match postings that only
// carry the postal abbreviation ("Austin, TX" against "Texas"). Abbreviations
// match as whole tokens only; a bare substring check would light up on words
// like "context".
var stateAbbrevs = map[string]string{
	"alabama": "al", "alaska": "ak", "arizona": "az", "arkansas": "ar",
	"california": "ca", "colorado": "co", "connecticut": "ct",
	"delaware": "de", "florida": "fl", "georgia": "ga", "hawaii": "hi",
	"idaho": "id", "illinois": "il", "indiana": "in", "iowa": "ia",
	"kansas": "ks", "kentucky": "ky", "louisiana": "la", "maine": "me",
	"maryland": "md", "massachusetts": "ma", "michigan": "mi",
	"minnesota": "mn", "mississippi": "ms", "missouri": "mo",
	"montana": "mt", "nebraska": "ne", "nevada": "nv",
	"new hampshire": "nh", "new jersey": "nj", "new mexico": "nm",
	"new york": "ny", "north carolina": "nc", "north dakota": "nd",
	"ohio": "oh", "oklahoma": "ok", "oregon": "or", "pennsylvania": "pa",
	"rhode island": "ri", "south carolina": "sc", "south dakota": "sd",
	"tennessee": "tn", "texas": "tx", "utah": "ut", "vermont": "vt",
	"virginia": "va", "washington": "wa", "west virginia": "wv",
	"wisconsin": "wi", "wyoming": "wy", "district of columbia": "dc",
}

func locationTokens(loc string) map[string]bool {
	out := map[string]bool{}
	for _, tok := range strings.FieldsFunc(loc, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		out[tok] = true
	}
	return out
}

// matchesLocation reports whether one configured location matches the
// normalized posting location: direct substring, or state-abbreviation
// token.
func matchesLocation(postingLoc string, configured string) bool {
	k := classify.Normalize(configured)
	if k == "" {
		return false
	}
	if strings.Contains(postingLoc, k) {
		return true
	}
	if ab, ok := stateAbbrevs[k]; ok && locationTokens(postingLoc)[ab] {
		return true
	}
	return false
}
