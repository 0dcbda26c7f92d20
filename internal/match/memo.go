package match

// Result carries the per-field match flags for one keyword category,
// computed once per record per category during a single evaluation.
type Result struct {
	InTitle    bool
	InAbstract bool
}

// Either reports a match in either field.
func (r Result) Either() bool {
	return r.InTitle || r.InAbstract
}

// Memo normalizes a record's fields once and caches category match results
// for the duration of one evaluation.
type Memo struct {
	title    string
	abstract string
	results  map[string]Result
}

// NewMemo prepares cached matching over the given raw title and abstract.
func NewMemo(title, abstract string) *Memo {
	return &Memo{
		title:    Normalize(title),
		abstract: Normalize(abstract),
		results:  map[string]Result{},
	}
}

// Match evaluates the keyword set against both fields, caching by key.
// Callers must use a key unique per category (e.g. "exclusion/study_types").
func (m *Memo) Match(key string, keywords []string, mode Mode) Result {
	if res, ok := m.results[key]; ok {
		return res
	}

	res := Result{
		InTitle:    ContainsAny(m.title, keywords, mode),
		InAbstract: ContainsAny(m.abstract, keywords, mode),
	}
	m.results[key] = res
	return res
}

// TitleContainsAny tests ad-hoc keywords against the normalized title without
// caching; used for override qualifier terms.
func (m *Memo) TitleContainsAny(keywords []string, mode Mode) bool {
	return ContainsAny(m.title, keywords, mode)
}
