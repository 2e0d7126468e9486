package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const validConfig = `
sources:
  greenhouse:
    enabled: true
    boards: [acme]
  lever:
    enabled: true
    companies: [globex]
filters:
  internship_type_keywords: [intern, internship]
  role_keywords: [machine learning, ml]
  locations: ["Remote US", Texas]
scoring:
  min_match_score: 50
  max_results: 10
`

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Sources.Greenhouse.Enabled || cfg.Sources.Greenhouse.Boards[0] != "acme" {
		t.Errorf("greenhouse = %+v", cfg.Sources.Greenhouse)
	}
	if !cfg.Sources.Lever.Enabled || cfg.Sources.Lever.Companies[0] != "globex" {
		t.Errorf("lever = %+v", cfg.Sources.Lever)
	}
	if cfg.Scoring.MinMatchScore != 50 || cfg.Scoring.MaxResults != 10 {
		t.Errorf("scoring = %+v", cfg.Scoring)
	}
	if len(cfg.Filters.Locations) != 2 {
		t.Errorf("locations = %v", cfg.Filters.Locations)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// absent key takes the documented default
	if !cfg.Filters.RejectIfNoSponsorship {
		t.Error("reject_if_no_sponsorship must default to true")
	}
	if len(cfg.Filters.InternTitleMarkers) == 0 || len(cfg.Filters.SeniorTitleMarkers) == 0 {
		t.Error("title marker defaults not applied")
	}
	if cfg.Limits.RequestsPerSecond <= 0 || cfg.Limits.Burst <= 0 {
		t.Errorf("limit defaults not applied: %+v", cfg.Limits)
	}
	if cfg.Profile.Name == "" || cfg.Profile.Degree == "" {
		t.Errorf("profile defaults not applied: %+v", cfg.Profile)
	}
}

func TestLoad_ExplicitRejectFalse(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
sources:
  greenhouse:
    enabled: true
    boards: [acme]
filters:
  reject_if_no_sponsorship: false
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Filters.RejectIfNoSponsorship {
		t.Error("explicit false must be honored")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "sources: [broken")); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_NoSourcesEnabled(t *testing.T) {
	_, err := Load(writeConfig(t, `
sources:
  greenhouse:
    enabled: false
  lever:
    enabled: false
`))
	if err == nil {
		t.Fatal("expected validation error with no enabled sources")
	}
}

func TestLoad_ScoreOutOfRange(t *testing.T) {
	_, err := Load(writeConfig(t, `
sources:
  greenhouse:
    enabled: true
    boards: [acme]
scoring:
  min_match_score: 150
`))
	if err == nil {
		t.Fatal("expected validation error for min_match_score > 100")
	}
}

func TestLoadKeywords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.txt")
	content := "# comment line\n\nmachine learning\n  pytorch  \n\n# another\nsql\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	kws, err := LoadKeywords(path)
	if err != nil {
		t.Fatalf("LoadKeywords: %v", err)
	}
	want := []string{"machine learning", "pytorch", "sql"}
	if len(kws) != len(want) {
		t.Fatalf("got %v, want %v", kws, want)
	}
	for i := range want {
		if kws[i] != want[i] {
			t.Errorf("kws[%d] = %q, want %q", i, kws[i], want[i])
		}
	}
}

func TestLoadKeywords_MissingFile(t *testing.T) {
	if _, err := LoadKeywords(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected error for missing keywords file")
	}
}

func TestEnsureUserFile(t *testing.T) {
	dir := t.TempDir()
	defaultPath := filepath.Join(dir, "default.yml")
	if err := os.WriteFile(defaultPath, []byte("a: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	dataDir := t.TempDir()
	userPath, err := EnsureUserFile(dataDir, "config.yml", defaultPath)
	if err != nil {
		t.Fatalf("EnsureUserFile: %v", err)
	}
	b, err := os.ReadFile(userPath)
	if err != nil || string(b) != "a: 1\n" {
		t.Fatalf("seeded file = %q, err %v", b, err)
	}

	// user edits survive subsequent calls
	if err := os.WriteFile(userPath, []byte("a: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	again, err := EnsureUserFile(dataDir, "config.yml", defaultPath)
	if err != nil {
		t.Fatal(err)
	}
	b, _ = os.ReadFile(again)
	if string(b) != "a: 2\n" {
		t.Fatalf("existing user file was overwritten: %q", b)
	}
}
