package matching

import "strings"

// Extract returns the vocabulary skills present in the text. Presence is a
// case-insensitive substring check, so a short skill name can match inside an
// unrelated word ("Go" inside "Google"); word-boundary disambiguation is
// deliberately not attempted. The result contains canonical skill names in
// vocabulary order with no duplicates. Empty text yields an empty set.
func Extract(text string, vocab Vocabulary) []string {
	found := make([]string, 0)
	if text == "" {
		return found
	}

	lowered := strings.ToLower(text)
	for _, skill := range vocab.skills {
		if strings.Contains(lowered, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}

	return found
}
