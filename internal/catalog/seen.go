package catalog

import (
	"encoding/json"
	"os"
	"time"
)

// SeenJobs is the content of an exclude file: postings the user has already
// reviewed and wants removed from future match runs.
type SeenJobs struct {
	Items []*SeenJob
}

type SeenJob struct {
	Title     string
	Company   string
	SourceURL string
	SeenAt    time.Time
}

// SeenJobsFromFile reads an exclude file. An empty file is a valid empty
// list.
func SeenJobsFromFile(path string) (*SeenJobs, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &SeenJobs{}, nil
	}

	var seen SeenJobs
	if err := json.NewDecoder(file).Decode(&seen); err != nil {
		return nil, err
	}
	return &seen, nil
}

func (s *SeenJobs) Append(o *SeenJobs) {
	s.Items = append(s.Items, o.Items...)
}

func (s *SeenJobs) SourceURLs() []string {
	urls := make([]string, 0, len(s.Items))
	for _, job := range s.Items {
		urls = append(urls, job.SourceURL)
	}
	return urls
}

func (s *SeenJobs) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
