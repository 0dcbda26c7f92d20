package domain

// ArticleRecord is a core entity describing one bibliographic item to screen.
// Missing title or abstract fields normalize to empty strings, never nil.
type ArticleRecord struct {
	Key      string
	Title    string
	Abstract string
	Journal  string
	Year     string
	Author   string
	DOI      string
}

// Verdict enumerates the two terminal screening outcomes.
type Verdict string

const (
	VerdictInclude Verdict = "Include"
	VerdictExclude Verdict = "Exclude"
)

// Decision is the terminal screening result for one record. It is a pure
// function of the record and the criteria; evaluating the same pair twice
// yields an identical Decision.
type Decision struct {
	Key     string
	Title   string
	Verdict Verdict
	Reason  string
}

// Included reports whether the decision admits the record into the review.
func (d Decision) Included() bool {
	return d.Verdict == VerdictInclude
}
