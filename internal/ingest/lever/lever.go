package lever

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"jobdigest/internal/domain"
	"jobdigest/internal/ingest/util"
)

const defaultBaseURL = "https://api.lever.co/v0/postings"

type Config struct {
	Companies []string // api.lever.co/v0/postings/<company>
}

type Scraper struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
	baseURL string
	log     zerolog.Logger
}

func New(cfg Config, limiter *util.HostLimiter, log zerolog.Logger) *Scraper {
	return &Scraper{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 30 * time.Second},
		limiter: limiter,
		baseURL: defaultBaseURL,
		log:     log.With().Str("ats", "lever").Logger(),
	}
}

func (s *Scraper) Name() string { return "lever" }

type leverPosting struct {
	ID         string `json:"id"`
	Text       string `json:"text"` // title
	HostedURL  string `json:"hostedUrl"`
	Categories struct {
		Location string `json:"location"`
		Team     string `json:"team"`
	} `json:"categories"`
	DescriptionPlain string `json:"descriptionPlain"`
	Description      string `json:"description"` // html fallback
}

func (s *Scraper) Fetch(ctx context.Context) ([]domain.Posting, error) {
	var out []domain.Posting
	for _, company := range s.cfg.Companies {
		postings, err := s.fetchCompany(ctx, company)
		if err != nil {
			s.log.Warn().Str("company", company).Err(err).Msg("company fetch failed")
			continue
		}
		out = append(out, postings...)
	}
	return out, nil
}

func (s *Scraper) fetchCompany(ctx context.Context, company string) ([]domain.Posting, error) {
	apiURL := fmt.Sprintf("%s/%s?mode=json", s.baseURL, company)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "jobdigest/1.0 (+local)")

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, apiURL); err != nil {
			return nil, err
		}
	}
	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lever get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("lever status %d", res.StatusCode)
	}

	var postings []leverPosting
	if err := json.NewDecoder(res.Body).Decode(&postings); err != nil {
		return nil, fmt.Errorf("lever decode: %w", err)
	}

	out := make([]domain.Posting, 0, len(postings))
	for _, p := range postings {
		desc := p.DescriptionPlain
		if desc == "" {
			desc = p.Description
		}
		out = append(out, domain.Posting{
			ID:          p.ID,
			Title:       p.Text,
			Location:    p.Categories.Location,
			Team:        p.Categories.Team,
			Company:     company,
			Source:      "Lever",
			URL:         p.HostedURL,
			Description: desc,
		})
	}
	return out, nil
}
