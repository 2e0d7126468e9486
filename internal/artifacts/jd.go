package artifacts

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/ingest/util"
)

// maxJDLen caps captured description text; templates only need the head of
// the page, not a whole careers site.
const maxJDLen = 6000

var blankRunsRe = regexp.MustCompile(`\n{3,}`)

// contentSelectors are tried in order against known hosting platforms
// (Greenhouse-style containers first). First hit wins; no hit falls back to
// whole-body text.
var contentSelectors = []string{
	"#content",
	".content",
	"div#job",
	"div.job__description",
	"div.job-posting",
	"div#job_description",
}

type JDFetcher struct {
	hc      *http.Client
	limiter *util.HostLimiter
}

func NewJDFetcher(limiter *util.HostLimiter) *JDFetcher {
	return &JDFetcher{
		hc:      &http.Client{Timeout: 30 * time.Second},
		limiter: limiter,
	}
}

// FetchDescription pulls readable text from a job posting page. Best-effort
// by contract: any failure returns "", and the artifact templates fall back
// to their defaults.
func (f *JDFetcher) FetchDescription(ctx context.Context, url string) string {
	if url == "" {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	if f.limiter != nil {
		if err := f.limiter.WaitURL(ctx, url); err != nil {
			return ""
		}
	}
	res, err := f.hc.Do(req)
	if err != nil {
		return ""
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return ""
	}
	return ExtractText(doc)
}

// ExtractText picks the most specific known content container, falling back
// to the page body, then normalizes and caps the text.
func ExtractText(doc *goquery.Document) string {
	doc.Find("script, style, noscript").Remove()

	var node *goquery.Selection
	for _, sel := range contentSelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			node = s
			break
		}
	}
	if node == nil {
		node = doc.Find("body").First()
	}

	text := strings.TrimSpace(node.Text())
	text = blankRunsRe.ReplaceAllString(text, "\n\n")
	if len(text) > maxJDLen {
		text = text[:maxJDLen]
	}
	return text
}
