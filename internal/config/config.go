package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"jobdigest/internal/classify"
)

type Config struct {
	Sources Sources `yaml:"sources"`
	Filters Filters `yaml:"filters"`
	Scoring Scoring `yaml:"scoring"`
	Profile Profile `yaml:"profile"`
	Limits  Limits  `yaml:"limits"`
}

type Sources struct {
	Greenhouse Greenhouse `yaml:"greenhouse"`
	Lever      Lever      `yaml:"lever"`
}

type Greenhouse struct {
	Enabled bool     `yaml:"enabled"`
	Boards  []string `yaml:"boards"`
}

type Lever struct {
	Enabled   bool     `yaml:"enabled"`
	Companies []string `yaml:"companies"`
}

type Filters struct {
	// InternshipTypeKeywords must hit somewhere in title+description+team.
	InternshipTypeKeywords []string
	// InternTitleMarkers match the title as substrings; SeniorTitleMarkers
	// exclude as whole words. Both fall back to the classify defaults.
	InternTitleMarkers []string
	SeniorTitleMarkers []string
	RoleKeywords       []string
	Locations          []string
	// RejectIfNoSponsorship drops postings with explicit no-sponsorship
	// language. Default: true. UNKNOWN is always kept either way.
	RejectIfNoSponsorship bool
}

type Scoring struct {
	MinMatchScore int `yaml:"min_match_score"`
	MaxResults    int `yaml:"max_results"`
}

// Profile parameterizes the generated cover letter and bullet headers.
type Profile struct {
	Name   string `yaml:"name"`
	Degree string `yaml:"degree"`
}

// Limits bounds outbound request rate per host.
type Limits struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// rawFilters exists so an absent reject_if_no_sponsorship key can take its
// documented default rather than Go's zero value.
type rawFilters struct {
	InternshipTypeKeywords []string `yaml:"internship_type_keywords"`
	InternTitleMarkers     []string `yaml:"intern_title_markers"`
	SeniorTitleMarkers     []string `yaml:"senior_title_markers"`
	RoleKeywords           []string `yaml:"role_keywords"`
	Locations              []string `yaml:"locations"`
	RejectIfNoSponsorship  *bool    `yaml:"reject_if_no_sponsorship"`
}

type rawConfig struct {
	Sources Sources    `yaml:"sources"`
	Filters rawFilters `yaml:"filters"`
	Scoring Scoring    `yaml:"scoring"`
	Profile Profile    `yaml:"profile"`
	Limits  Limits     `yaml:"limits"`
}

// Load reads the YAML config at path, applies defaults, and validates.
func Load(path string) (Config, error) {
	var cfg Config

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	reject := true
	if raw.Filters.RejectIfNoSponsorship != nil {
		reject = *raw.Filters.RejectIfNoSponsorship
	}

	cfg = Config{
		Sources: raw.Sources,
		Filters: Filters{
			InternshipTypeKeywords: raw.Filters.InternshipTypeKeywords,
			InternTitleMarkers:     raw.Filters.InternTitleMarkers,
			SeniorTitleMarkers:     raw.Filters.SeniorTitleMarkers,
			RoleKeywords:           raw.Filters.RoleKeywords,
			Locations:              raw.Filters.Locations,
			RejectIfNoSponsorship:  reject,
		},
		Scoring: raw.Scoring,
		Profile: raw.Profile,
		Limits:  raw.Limits,
	}

	if len(cfg.Filters.InternTitleMarkers) == 0 {
		cfg.Filters.InternTitleMarkers = classify.DefaultInternMarkers
	}
	if len(cfg.Filters.SeniorTitleMarkers) == 0 {
		cfg.Filters.SeniorTitleMarkers = classify.DefaultSeniorMarkers
	}
	if cfg.Scoring.MaxResults <= 0 {
		cfg.Scoring.MaxResults = 15
	}
	if cfg.Profile.Name == "" {
		cfg.Profile.Name = "Candidate"
	}
	if cfg.Profile.Degree == "" {
		cfg.Profile.Degree = "M.S. Artificial Intelligence candidate"
	}
	if cfg.Limits.RequestsPerSecond <= 0 {
		cfg.Limits.RequestsPerSecond = 2
	}
	if cfg.Limits.Burst <= 0 {
		cfg.Limits.Burst = 4
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if !cfg.Sources.Greenhouse.Enabled && !cfg.Sources.Lever.Enabled {
		return fmt.Errorf("at least one source must be enabled")
	}
	if cfg.Sources.Greenhouse.Enabled && len(cfg.Sources.Greenhouse.Boards) == 0 {
		return fmt.Errorf("sources.greenhouse.boards is empty")
	}
	if cfg.Sources.Lever.Enabled && len(cfg.Sources.Lever.Companies) == 0 {
		return fmt.Errorf("sources.lever.companies is empty")
	}
	if cfg.Scoring.MinMatchScore < 0 || cfg.Scoring.MinMatchScore > 100 {
		return fmt.Errorf("scoring.min_match_score must be in 0..100, got %d", cfg.Scoring.MinMatchScore)
	}
	return nil
}
