package resume

import (
	"errors"
	"strings"
)

// ErrNoSource is returned when neither inline text nor a file is configured.
// This is the only fatal input error: an empty resume is still a valid
// input and simply extracts no skills.
var ErrNoSource = errors.New("resume source is not configured: set resume.text or resume.file")

// Source describes where the resume text comes from. When File is set it
// takes precedence over Text.
type Source struct {
	Text string
	File string
}

// Load resolves the resume text from the provided source.
func Load(src Source) (string, error) {
	file := strings.TrimSpace(src.File)
	if file != "" {
		return fromFile(file)
	}

	if strings.TrimSpace(src.Text) == "" {
		return "", ErrNoSource
	}

	return src.Text, nil
}
