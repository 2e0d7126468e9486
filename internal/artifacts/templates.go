package artifacts

import (
	"fmt"
	"strings"

	"jobdigest/internal/config"
)

var baseBullets = []string{
	"Built automation to ingest structured/unstructured data, normalize fields, and produce reliable outputs for downstream workflows.",
	"Developed repeatable evaluation and debugging routines, validating changes with clear metrics and documenting results for fast iteration.",
	"Collaborated across engineering stakeholders to translate requirements into implementable technical tasks and deliver working increments.",
}

var familyBullets = map[string][]string{
	"MLOps": {
		"Implemented lightweight ML/LLM pipeline components with reproducible runs, configurable parameters, and clear logging for troubleshooting.",
		"Worked with containerized workflows and deployment-minded practices to support reliable iteration across environments (dev to production).",
		"Instrumented data and model outputs with simple quality checks to reduce regressions and improve observability.",
	},
	"Research": {
		"Designed and ran experiments to compare approaches, tracked outcomes, and summarized findings to guide next iterations.",
		"Implemented prototype components to test model behavior, failure modes, and performance under varied inputs.",
		"Produced structured write-ups of experiment settings, results, and limitations to support reproducibility.",
	},
	"Data/Applied": {
		"Analyzed datasets to identify patterns, validate assumptions, and provide actionable insights for product/engineering decisions.",
		"Built small data transformations and QA checks to improve data reliability and reduce noisy outputs.",
		"Created clear summaries of results, assumptions, and risks for stakeholder review.",
	},
}

var defaultBullets = []string{
	"Built and integrated application components that consume model outputs safely and reliably, with input validation and deterministic fallbacks.",
	"Implemented simple retrieval and ranking patterns (where applicable) to improve response quality and reduce irrelevant outputs.",
	"Improved performance and reliability by profiling bottlenecks and tightening runtime behavior.",
}

// ResumeBullets renders paste-ready bullets for one job: two family-tailored
// lines plus one generic line. Deterministic for the same title/company/jd.
func ResumeBullets(title, company, jd string) string {
	hints := DeriveHints(title, jd)

	tailored, ok := familyBullets[hints.RoleFamily]
	if !ok {
		tailored = defaultBullets
	}
	bullets := append(append([]string{}, tailored[:2]...), baseBullets[0])

	var b strings.Builder
	fmt.Fprintf(&b, "**Resume bullets (paste-ready) — %s | %s:**\n", company, title)
	for _, bl := range bullets {
		b.WriteString("- " + bl + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// CoverLetter renders a short draft parameterized by the derived hints and
// the candidate profile. No model call; same inputs, same letter.
func CoverLetter(title, company, jd string, profile config.Profile) string {
	hints := DeriveHints(title, jd)

	focus := "practical ML/LLM implementation"
	if len(hints.Focus) > 0 {
		focus = strings.Join(head(hints.Focus, 3), ", ")
	}
	tools := "Python and modern ML tooling"
	if len(hints.Tools) > 0 {
		tools = strings.Join(head(hints.Tools, 3), ", ")
	}

	return fmt.Sprintf(
		"**Cover letter draft — %s | %s:**\n"+
			"Dear Hiring Team,\n\n"+
			"I am an %s seeking an internship where I can contribute to %s. "+
			"I build working systems quickly, iterate based on measurable outcomes, and document decisions so teams can move with confidence.\n\n"+
			"My recent work has emphasized %s, repeatable workflows, and building reliable components that can run in real environments. "+
			"I am comfortable learning new stacks, collaborating with engineering teams, and shipping incremental improvements under time constraints.\n\n"+
			"I would welcome the opportunity to support %s as a %s intern and contribute to production-grade ML/AI work.\n\n"+
			"Sincerely,\n%s",
		company, title, profile.Degree, focus, tools, company, title, profile.Name,
	)
}

func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
