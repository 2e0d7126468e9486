package artifacts

import (
	"slices"
	"testing"
)

func TestDeriveHintsRoleFamilyPriority(t *testing.T) {
	cases := []struct {
		name  string
		title string
		jd    string
		want  string
	}{
		{"mlops", "MLOps Intern", "", "MLOps"},
		{"research", "Research Intern", "", "Research"},
		{"data", "Data Analytics Intern", "", "Data/Applied"},
		{"engineering", "Backend Intern", "", "AI Engineering"},
		{"default", "Intern", "nothing matches here", "AI/ML"},
		// fixed priority order: platform words win over research words
		{"mlops beats research", "Research Platform Intern", "", "MLOps"},
		{"research beats data", "Research Scientist Intern", "data heavy role", "Research"},
		{"jd text counts too", "Intern", "our mlops infrastructure team", "MLOps"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DeriveHints(c.title, c.jd).RoleFamily; got != c.want {
				t.Errorf("RoleFamily = %q, want %q", got, c.want)
			}
		})
	}
}

func TestDeriveHintsTagsStack(t *testing.T) {
	h := DeriveHints("LLM Intern", "RAG pipelines on Kubernetes in AWS, Python and SQL, remote, visa sponsor")

	wantFocus := []string{"LLMs / RAG", "Pipelines", "Containers", "Cloud"}
	for _, f := range wantFocus {
		if !slices.Contains(h.Focus, f) {
			t.Errorf("focus missing %q: %v", f, h.Focus)
		}
	}
	for _, tool := range []string{"Python", "SQL"} {
		if !slices.Contains(h.Tools, tool) {
			t.Errorf("tools missing %q: %v", tool, h.Tools)
		}
	}
	for _, sig := range []string{"Internship-friendly", "Remote", "Visa mention in posting"} {
		if !slices.Contains(h.Signals, sig) {
			t.Errorf("signals missing %q: %v", sig, h.Signals)
		}
	}
}

func TestDeriveHintsDeterministic(t *testing.T) {
	a := DeriveHints("ML Intern", "python pytorch kubernetes")
	b := DeriveHints("ML Intern", "python pytorch kubernetes")
	if a.RoleFamily != b.RoleFamily || !slices.Equal(a.Focus, b.Focus) || !slices.Equal(a.Tools, b.Tools) {
		t.Fatalf("hints differ across calls: %+v vs %+v", a, b)
	}
}
