package greenhouse

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

const defaultBaseURL = "https://boards-api.greenhouse.io/v1/boards"

type Config struct {
	Boards []string // board tokens under boards-api.greenhouse.io
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
		log:     log.With().Str("ats", "greenhouse").Logger(),
	}
}

func (s *Scraper) Name() string { return "greenhouse" }

// flexName absorbs the two shapes Greenhouse uses for location/department:
// a bare string, or an object carrying a name. Anything else decodes to "".
type flexName struct {
	Name string
}

func (f *flexName) UnmarshalJSON(b []byte) error {
	f.Name = ""
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		_ = json.Unmarshal(b, &f.Name)
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	_ = json.Unmarshal(b, &obj)
	f.Name = obj.Name
	return nil
}

type ghJob struct {
	ID          json.Number `json:"id"`
	Title       string      `json:"title"`
	Location    flexName    `json:"location"`
	Department  flexName    `json:"department"`
	AbsoluteURL string      `json:"absolute_url"`
	Content     string      `json:"content"`
}

type ghResponse struct {
	Jobs []ghJob `json:"jobs"`
}

// Fetch pulls every configured board. One board failing costs only that
// board's postings.
func (s *Scraper) Fetch(ctx context.Context) ([]domain.Posting, error) {
	var out []domain.Posting
	for _, board := range s.cfg.Boards {
		postings, err := s.fetchBoard(ctx, board)
		if err != nil {
			s.log.Warn().Str("board", board).Err(err).Msg("board fetch failed")
			continue
		}
		out = append(out, postings...)
	}
	return out, nil
}

func (s *Scraper) fetchBoard(ctx context.Context, board string) ([]domain.Posting, error) {
	apiURL := fmt.Sprintf("%s/%s/jobs?content=true", s.baseURL, board)

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
		return nil, fmt.Errorf("greenhouse get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("greenhouse status %d", res.StatusCode)
	}

	var data ghResponse
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("greenhouse decode: %w", err)
	}

	out := make([]domain.Posting, 0, len(data.Jobs))
	for _, j := range data.Jobs {
		out = append(out, domain.Posting{
			ID:          j.ID.String(),
			Title:       j.Title,
			Location:    j.Location.Name,
			Team:        j.Department.Name,
			Company:     board,
			Source:      "Greenhouse",
			URL:         j.AbsoluteURL,
			Description: j.Content,
		})
	}
	return out, nil
}
