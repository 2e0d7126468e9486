package domain

// Sponsorship is the tri-state visa stance inferred from posting text.
// Unknown is not a rejection; silent postings are kept for human review.
type Sponsorship string

const (
	SponsorshipNo      Sponsorship = "NO"
	SponsorshipYes     Sponsorship = "YES"
	SponsorshipUnknown Sponsorship = "UNKNOWN"
)

// Posting is the canonical job record every stage downstream of the source
// adapters operates on. All fields are plain strings; adapters coerce
// absent/null source fields to "" so text operations never have to nil-check.
type Posting struct {
	ID          string // source-local identifier, not globally unique
	Title       string
	Location    string
	Team        string
	Company     string
	Source      string // origin tag: "Greenhouse", "Lever"
	URL         string
	Description string
}

// TextForRole is the blob the classifier and the role-keyword gate match
// against.
func (p Posting) TextForRole() string {
	return p.Title + "\n" + p.Description + "\n" + p.Team
}

// ScoredCandidate is a posting that survived the gate pipeline. Score is a
// pure function of the posting and the keyword set, never stored
// independently.
type ScoredCandidate struct {
	Posting     Posting
	Score       int // 0..100
	Sponsorship Sponsorship
}

// DigestRow is the lossy row recovered from a rendered digest table. Score
// comes back as text, and separator characters inside fields were already
// sanitized at render time.
type DigestRow struct {
	Score       string
	Sponsorship string
	Title       string
	Company     string
	Source      string
	Location    string
	ApplyURL    string // "" when the link cell had no parenthesized URL
}
