package classify

import (
	"testing"

	"jobdigest/internal/domain"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"  Hello   World  ", "hello world"},
		{"ML\n\tEngineer", "ml engineer"},
		{"ALREADY lower", "already lower"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestContainsAny(t *testing.T) {
	if !ContainsAny("Machine Learning  Intern", []string{"learning intern"}) {
		t.Error("expected normalized substring match across collapsed whitespace")
	}
	if ContainsAny("Software Engineer", []string{"intern", ""}) {
		t.Error("empty needle must not match")
	}
	if ContainsAny("anything", nil) {
		t.Error("no needles, no match")
	}
}

func TestSponsorshipStatus(t *testing.T) {
	cases := []struct {
		name string
		text string
		want domain.Sponsorship
	}{
		{"explicit no", "We offer no sponsorship for this role", domain.SponsorshipNo},
		{"citizen only", "Must be a U.S. citizen", domain.SponsorshipNo},
		{"clearance", "Security clearance required for this position", domain.SponsorshipNo},
		{"explicit yes", "Visa sponsorship available", domain.SponsorshipYes},
		{"will sponsor", "we will sponsor the right candidate", domain.SponsorshipYes},
		{"opt", "we accept OPT candidates", domain.SponsorshipYes},
		{"silent", "Great role on a great team", domain.SponsorshipUnknown},
		{"empty", "", domain.SponsorshipUnknown},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := SponsorshipStatus(c.text); got != c.want {
				t.Errorf("SponsorshipStatus(%q) = %v, want %v", c.text, got, c.want)
			}
		})
	}
}

// A posting quoting both policies must classify as NO: rejection phrases
// are checked first and short-circuit.
func TestSponsorshipRejectionPrecedence(t *testing.T) {
	text := "Note: no sponsorship. We used to offer visa sponsorship but no longer do."
	if got := SponsorshipStatus(text); got != domain.SponsorshipNo {
		t.Fatalf("got %v, want NO", got)
	}
}

func TestTitleRule(t *testing.T) {
	rule := NewTitleRule(DefaultInternMarkers, DefaultSeniorMarkers)

	cases := []struct {
		title string
		want  bool
	}{
		{"Machine Learning Intern", true},
		{"Software Engineering Co-op", true},
		{"Student Researcher", true},
		{"Maintenance Intern", true},
		// whole-word senior markers reject
		{"Senior Machine Learning Intern", false},
		{"Staff Engineer, Internal Tools Intern", false},
		{"Lead Data Intern", false},
		// substring collisions must not reject
		{"Leadership Program Intern", true},
		{"Internship, Leadership Development", true},
		// no intern marker at all
		{"Machine Learning Engineer", false},
		{"", false},
	}
	for _, c := range cases {
		if got := rule.IsInternTitle(c.title); got != c.want {
			t.Errorf("IsInternTitle(%q) = %v, want %v", c.title, got, c.want)
		}
	}
}

func TestTitleRuleCustomMarkers(t *testing.T) {
	rule := NewTitleRule([]string{"praktikum"}, []string{"leiter"})
	if !rule.IsInternTitle("Praktikum Data Science") {
		t.Error("custom intern marker should match")
	}
	if rule.IsInternTitle("Praktikum Leiter") {
		t.Error("custom senior marker should reject")
	}
}
