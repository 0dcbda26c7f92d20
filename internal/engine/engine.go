// Package engine applies a criteria-driven chain of guarded rules to one
// bibliographic record at a time, producing a terminal Include/Exclude
// decision with a reason. Evaluation is pure: no state survives a call, and
// the same (record, criteria) pair always yields the identical decision.
package engine

import (
	"BibScreen/internal/criteria"
	"BibScreen/internal/domain"
	"BibScreen/internal/match"
)

// Engine screens records against one validated criteria model. Safe for
// concurrent use; the model is immutable and each evaluation owns its memo.
type Engine struct {
	model *criteria.Model
	plan  criteria.Plan
}

// New builds an engine over a validated model.
func New(model *criteria.Model) *Engine {
	return &Engine{model: model, plan: model.Plan()}
}

// Screen evaluates the rule chain for a single record. Total for any
// well-formed model: exactly one terminal state is reached, the final
// include step being the catch-all.
func (e *Engine) Screen(rec domain.ArticleRecord) domain.Decision {
	memo := match.NewMemo(rec.Title, rec.Abstract)

	decision := domain.Decision{
		Key:     rec.Key,
		Title:   rec.Title,
		Verdict: domain.VerdictExclude,
	}

	if !e.primaryTopic(memo) {
		decision.Reason = e.plan.PrimaryReason
		return decision
	}

	for _, guard := range e.plan.Chain {
		fired := inScope(e.match(memo, guard.Section, guard.Category, guard.Mode), guard.Scope)
		if guard.Require != fired {
			decision.Reason = guard.Reason
			return decision
		}
	}

	decision.Verdict = domain.VerdictInclude
	decision.Reason = e.plan.IncludeReason
	return decision
}

// primaryTopic implements the first gate: a title match on the primary
// category always qualifies; an abstract-only match qualifies only when no
// unresolved competing-category match is present in the title.
func (e *Engine) primaryTopic(memo *match.Memo) bool {
	primary := e.match(memo, criteria.SectionInclusion, e.plan.Primary, match.ModeAuto)
	if primary.InTitle {
		return true
	}
	return primary.InAbstract && !e.competing(memo)
}

// competing reports whether a competing-category title match stands after
// applying the declared override tuples.
func (e *Engine) competing(memo *match.Memo) bool {
	if e.plan.Competing == "" {
		return false
	}

	flagged := e.match(memo, criteria.SectionExclusion, e.plan.Competing, match.ModeAuto).InTitle
	if !flagged {
		return false
	}

	for _, ov := range e.plan.Overrides {
		if ov.Competing != e.plan.Competing {
			continue
		}
		primaryInTitle := e.match(memo, criteria.SectionInclusion, ov.Primary, match.ModeAuto).InTitle
		if primaryInTitle && memo.TitleContainsAny(ov.When, match.ModeSubstring) {
			return false
		}
	}
	return true
}

func (e *Engine) match(memo *match.Memo, section criteria.Section, category string, mode match.Mode) match.Result {
	key := section.String() + "/" + category
	return memo.Match(key, e.model.Keywords(section, category), mode)
}

func inScope(res match.Result, scope criteria.Scope) bool {
	switch scope {
	case criteria.ScopeTitle:
		return res.InTitle
	case criteria.ScopeAbstract:
		return res.InAbstract
	default:
		return res.Either()
	}
}
