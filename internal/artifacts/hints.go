package artifacts

import "strings"

// Hints is what the templates key on: one coarse role family plus
// non-exclusive focus/tool/signal tags.
type Hints struct {
	RoleFamily string
	Focus      []string
	Tools      []string
	Signals    []string
}

// DeriveHints inspects title and captured description text. Role family is
// checked in a fixed priority order, first match wins; focus and tool tags
// are independent checks and may stack.
func DeriveHints(title, jd string) Hints {
	t := strings.ToLower(title)
	j := strings.ToLower(jd)

	has := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(t, w) || strings.Contains(j, w) {
				return true
			}
		}
		return false
	}

	h := Hints{RoleFamily: "AI/ML"}

	switch {
	case has("mlops", "platform", "infrastructure", "deployment", "observability"):
		h.RoleFamily = "MLOps"
	case has("research", "scientist", "researcher"):
		h.RoleFamily = "Research"
	case has("data", "analytics", "insights"):
		h.RoleFamily = "Data/Applied"
	case has("software", "engineer", "backend", "full stack"):
		h.RoleFamily = "AI Engineering"
	}

	if has("llm", "large language", "rag", "retrieval", "prompt") {
		h.Focus = append(h.Focus, "LLMs / RAG")
	}
	if has("evaluation", "benchmark", "metrics", "ablation", "experiments") {
		h.Focus = append(h.Focus, "Model evaluation")
	}
	if has("pipelines", "workflow", "orchestration", "airflow", "prefect", "dag") {
		h.Focus = append(h.Focus, "Pipelines")
	}
	if has("kubernetes", "docker", "helm", "containers") {
		h.Focus = append(h.Focus, "Containers")
	}
	if has("aws", "gcp", "azure", "cloud") {
		h.Focus = append(h.Focus, "Cloud")
	}

	if has("pytorch", "tensorflow", "jax") {
		h.Tools = append(h.Tools, "PyTorch/TensorFlow/JAX")
	}
	if has("python") {
		h.Tools = append(h.Tools, "Python")
	}
	if has("sql") {
		h.Tools = append(h.Tools, "SQL")
	}

	if has("intern", "internship") {
		h.Signals = append(h.Signals, "Internship-friendly")
	}
	if has("remote") {
		h.Signals = append(h.Signals, "Remote")
	}
	if has("sponsor", "visa", "cpt", "opt", "h1b") {
		h.Signals = append(h.Signals, "Visa mention in posting")
	}

	return h
}
