package matching

import (
	"math"
	"sort"

	"github.com/smartresume/resume-matcher/internal/catalog"
)

// Default weight split between required and nice-to-have skills.
const (
	DefaultRequiredWeight   = 80.0
	DefaultNiceToHaveWeight = 20.0
)

// Option applies a configuration option to the Matcher.
type Option func(*Matcher)

// WithWeights overrides the required/nice-to-have weight split. Non-positive
// values are ignored.
func WithWeights(required, niceToHave float64) Option {
	return func(m *Matcher) {
		if required > 0 {
			m.requiredWeight = required
		}
		if niceToHave > 0 {
			m.niceWeight = niceToHave
		}
	}
}

// WithEquivalence replaces the skill equivalence predicate.
func WithEquivalence(eq Equivalence) Option {
	return func(m *Matcher) {
		if eq != nil {
			m.equivalence = eq
		}
	}
}

// WithTiers overrides the tier classification thresholds.
func WithTiers(t Tiers) Option {
	return func(m *Matcher) {
		if t.High > 0 && t.Medium > 0 && t.High >= t.Medium {
			m.tiers = t
		}
	}
}

// Matcher scores job postings against an extracted resume skill set. It is a
// pure computation: no I/O, no shared state, safe to call from concurrent
// match runs.
type Matcher struct {
	requiredWeight float64
	niceWeight     float64
	equivalence    Equivalence
	tiers          Tiers
}

func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{
		requiredWeight: DefaultRequiredWeight,
		niceWeight:     DefaultNiceToHaveWeight,
		equivalence:    ContainsEquivalence,
		tiers:          DefaultTiers(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Tiers returns the thresholds this matcher classifies with.
func (m *Matcher) Tiers() Tiers {
	return m.tiers
}

// Match scores every job against the resume skills and returns a fresh
// result list sorted by score descending. Ties keep the relative catalog
// order: the sort must stay stable, downstream consumers rely on
// deterministic tie order. An empty catalog yields an empty list.
func (m *Matcher) Match(resumeSkills []string, jobs []*catalog.JobPosting) *Results {
	results := &Results{Items: make([]*Result, 0, len(jobs))}

	for _, job := range jobs {
		if job == nil {
			continue
		}
		results.Items = append(results.Items, m.score(resumeSkills, job))
	}

	sort.SliceStable(results.Items, func(i, k int) bool {
		return results.Items[i].Score > results.Items[k].Score
	})

	return results
}

// score computes the weighted match for a single job. A job with no required
// skills contributes 0 for the required component instead of dividing by
// zero; the nice-to-have denominator is floored at 1 for the same reason.
func (m *Matcher) score(resumeSkills []string, job *catalog.JobPosting) *Result {
	matched := make([]string, 0, len(job.RequiredSkills)+len(job.NiceToHaveSkills))
	missing := make([]string, 0)

	matchedRequired := 0
	for _, skill := range job.RequiredSkills {
		if m.matchesAny(skill, resumeSkills) {
			matched = append(matched, skill)
			matchedRequired++
			continue
		}
		missing = append(missing, skill)
	}

	matchedNice := 0
	for _, skill := range job.NiceToHaveSkills {
		if m.matchesAny(skill, resumeSkills) {
			matched = append(matched, skill)
			matchedNice++
		}
	}

	var requiredScore float64
	if total := len(job.RequiredSkills); total > 0 {
		requiredScore = float64(matchedRequired) / float64(total) * m.requiredWeight
	}

	niceTotal := len(job.NiceToHaveSkills)
	if niceTotal == 0 {
		niceTotal = 1
	}
	niceScore := float64(matchedNice) / float64(niceTotal) * m.niceWeight

	score := int(math.Round(requiredScore + niceScore))
	// Unreachable with the default 80/20 split, but weights are
	// configurable and the score contract is [0, 100].
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return &Result{
		Job:           job,
		Score:         score,
		MatchedSkills: matched,
		MissingSkills: missing,
	}
}

func (m *Matcher) matchesAny(skill string, resumeSkills []string) bool {
	for _, have := range resumeSkills {
		if m.equivalence(skill, have) {
			return true
		}
	}
	return false
}
