package artifacts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func docFrom(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestExtractTextSelectorPriority(t *testing.T) {
	html := `<html><body>
		<nav>site chrome</nav>
		<div id="content">The actual job description.</div>
		<div class="job-posting">less specific container</div>
	</body></html>`
	got := ExtractText(docFrom(t, html))
	if !strings.Contains(got, "The actual job description.") {
		t.Errorf("got %q", got)
	}
	if strings.Contains(got, "site chrome") {
		t.Error("#content hit must exclude surrounding page chrome")
	}
}

func TestExtractTextBodyFallback(t *testing.T) {
	html := `<html><body><p>No known container here.</p><script>var x = 1;</script></body></html>`
	got := ExtractText(docFrom(t, html))
	if !strings.Contains(got, "No known container here.") {
		t.Errorf("got %q", got)
	}
	if strings.Contains(got, "var x") {
		t.Error("script text must be stripped")
	}
}

func TestExtractTextCapsLength(t *testing.T) {
	long := strings.Repeat("word ", 3000)
	got := ExtractText(docFrom(t, "<html><body><div id='content'>"+long+"</div></body></html>"))
	if len(got) > maxJDLen {
		t.Fatalf("len = %d, want <= %d", len(got), maxJDLen)
	}
}

func TestFetchDescriptionBestEffort(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte(`<html><body><div id="content">JD text here</div></body></html>`))
		default:
			http.Error(w, "nope", http.StatusNotFound)
		}
	}))
	defer srv.Close()

	f := NewJDFetcher(nil)
	f.hc = srv.Client()

	if got := f.FetchDescription(context.Background(), srv.URL+"/ok"); !strings.Contains(got, "JD text here") {
		t.Errorf("got %q", got)
	}
	if got := f.FetchDescription(context.Background(), srv.URL+"/missing"); got != "" {
		t.Errorf("404 must yield empty string, got %q", got)
	}
	if got := f.FetchDescription(context.Background(), ""); got != "" {
		t.Errorf("empty url must yield empty string, got %q", got)
	}
	if got := f.FetchDescription(context.Background(), "http://127.0.0.1:1/unreachable"); got != "" {
		t.Errorf("network failure must yield empty string, got %q", got)
	}
}
