package matching

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/smartresume/resume-matcher/internal/catalog"
)

const (
	ResultTitleField     = "Title"
	ResultCompanyField   = "Company"
	ResultSourceURLField = "SourceURL"
)

// Result is the outcome for one (resume, job) pair. It is constructed once
// per match run and never mutated afterwards.
type Result struct {
	Job           *catalog.JobPosting `json:"job"`
	Score         int                 `json:"score"`
	MatchedSkills []string            `json:"matched_skills"`
	MissingSkills []string            `json:"missing_skills"`
}

// Label is a short human-readable identifier used in logs and prompts.
func (r *Result) Label() string {
	return fmt.Sprintf("%s / %s", r.Job.Title, r.Job.Company)
}

func (r *Result) GetStringField(name string) string {
	switch name {
	case ResultTitleField:
		return r.Job.Title
	case ResultCompanyField:
		return r.Job.Company
	case ResultSourceURLField:
		return r.Job.SourceURL
	default:
		return ""
	}
}

// Results is a ranked list of match results, highest score first.
type Results struct {
	Items []*Result
}

func (r *Results) Len() int {
	return len(r.Items)
}

// KeepTier drops every result outside the given tier and returns labels of
// the dropped entries. TierAll keeps everything. Classification happens on
// the stored score; nothing is re-scored.
func (r *Results) KeepTier(tier Tier, tiers Tiers) []string {
	if tier == TierAll || tier == "" {
		return nil
	}

	kept := make([]*Result, 0, len(r.Items))
	var dropped []string
	for _, result := range r.Items {
		if tiers.Classify(result.Score) == tier {
			kept = append(kept, result)
			continue
		}
		dropped = append(dropped, result.Label())
	}

	r.Items = kept
	return dropped
}

// KeepMinScore drops results scoring below min and returns their labels.
func (r *Results) KeepMinScore(min int) []string {
	if min <= 0 {
		return nil
	}

	kept := make([]*Result, 0, len(r.Items))
	var dropped []string
	for _, result := range r.Items {
		if result.Score >= min {
			kept = append(kept, result)
			continue
		}
		dropped = append(dropped, result.Label())
	}

	r.Items = kept
	return dropped
}

// Exclude removes results whose field matches any of the targets and returns
// labels of the removed entries. Removal preserves the ranked order.
func (r *Results) Exclude(name string, targets []string) []string {
	if len(targets) == 0 {
		return nil
	}

	excluded := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		if target != "" {
			excluded[target] = struct{}{}
		}
	}

	kept := make([]*Result, 0, len(r.Items))
	var dropped []string
	for _, result := range r.Items {
		if _, ok := excluded[result.GetStringField(name)]; ok {
			dropped = append(dropped, result.Label())
			continue
		}
		kept = append(kept, result)
	}

	r.Items = kept
	return dropped
}

// ReportByCompany groups results per company, mirroring the ranked order
// inside each group.
func (r *Results) ReportByCompany(tiers Tiers) map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, result := range r.Items {
		key := result.Job.Company
		report[key] = append(report[key], map[string]string{
			"title":          result.Job.Title,
			"location":       result.Job.Location,
			"url":            result.Job.SourceURL,
			"score":          fmt.Sprintf("%d", result.Score),
			"tier":           string(tiers.Classify(result.Score)),
			"matched_skills": fmt.Sprintf("%v", result.MatchedSkills),
			"missing_skills": fmt.Sprintf("%v", result.MissingSkills),
		})
	}
	return report
}

// SkillGaps aggregates missing required skills across all results, most
// frequent first. It answers "which skills block the most postings".
func (r *Results) SkillGaps() []SkillGap {
	counts := make(map[string]int)
	for _, result := range r.Items {
		for _, skill := range result.MissingSkills {
			counts[skill]++
		}
	}

	gaps := make([]SkillGap, 0, len(counts))
	for skill, count := range counts {
		gaps = append(gaps, SkillGap{Skill: skill, Postings: count})
	}

	sort.Slice(gaps, func(i, k int) bool {
		if gaps[i].Postings != gaps[k].Postings {
			return gaps[i].Postings > gaps[k].Postings
		}
		return gaps[i].Skill < gaps[k].Skill
	})

	return gaps
}

// SkillGap counts how many postings list a skill as a missing requirement.
type SkillGap struct {
	Skill    string `json:"skill"`
	Postings int    `json:"postings"`
}

func (r *Results) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ToSeen converts the current results into exclude-file entries.
func (r *Results) ToSeen() *catalog.SeenJobs {
	seen := &catalog.SeenJobs{}
	for _, result := range r.Items {
		seen.Items = append(seen.Items, &catalog.SeenJob{
			Title:     result.Job.Title,
			Company:   result.Job.Company,
			SourceURL: result.Job.SourceURL,
			SeenAt:    time.Now().UTC(),
		})
	}
	return seen
}
