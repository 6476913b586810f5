package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

const (
	JobTitleField     = "Title"
	JobCompanyField   = "Company"
	JobSourceURLField = "SourceURL"
)

// JobPosting is one open position from the catalog file. The display fields
// are opaque to scoring; only the two skill lists participate in matching.
type JobPosting struct {
	Title            string   `json:"title,omitempty"`
	Company          string   `json:"company,omitempty"`
	Location         string   `json:"location,omitempty"`
	Description      string   `json:"description,omitempty"`
	RequiredSkills   []string `json:"requirements,omitempty"`
	NiceToHaveSkills []string `json:"nice_to_have,omitempty"`
	SourceURL        string   `json:"source_url,omitempty"`
}

type Jobs struct {
	Items []*JobPosting

	// Malformed counts records from the catalog file that could not be
	// decoded and were skipped.
	Malformed int
}

// FromFile loads a job catalog from a JSON file holding an array of job
// records. Records missing skill fields decode with empty lists; a record
// that cannot be decoded at all is skipped rather than failing the whole
// catalog.
func FromFile(path string) (*Jobs, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer file.Close()

	var raw []map[string]any
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding catalog file %q: %w", path, err)
	}

	jobs := &Jobs{Items: make([]*JobPosting, 0, len(raw))}
	for _, item := range raw {
		job := &JobPosting{}
		cfg := &mapstructure.DecoderConfig{
			Result:  job,
			TagName: "json",
		}

		decoder, err := mapstructure.NewDecoder(cfg)
		if err != nil {
			return nil, err
		}

		if err := decoder.Decode(item); err != nil {
			jobs.Malformed++
			continue
		}

		jobs.Items = append(jobs.Items, job)
	}

	return jobs, nil
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

func (j *Jobs) Titles() []string {
	titles := make([]string, 0, len(j.Items))
	for _, job := range j.Items {
		titles = append(titles, job.Title)
	}
	return titles
}

func (j *Jobs) FindByTitle(title string) *JobPosting {
	for _, job := range j.Items {
		if job.Title == title {
			return job
		}
	}
	return nil
}

func (job *JobPosting) GetStringField(name string) string {
	switch name {
	case JobTitleField:
		return job.Title
	case JobCompanyField:
		return job.Company
	case JobSourceURLField:
		return job.SourceURL
	default:
		return ""
	}
}
