package matching

import "strings"

// Vocabulary is an ordered set of canonical skill names. Entries are
// de-duplicated case-insensitively; the first spelling wins and defines the
// canonical form reported by Extract.
type Vocabulary struct {
	skills []string
}

// NewVocabulary builds a vocabulary from the given skill names. Empty and
// duplicate entries are dropped.
func NewVocabulary(skills ...string) Vocabulary {
	v := Vocabulary{skills: make([]string, 0, len(skills))}
	seen := make(map[string]struct{}, len(skills))

	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}

		key := strings.ToLower(skill)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		v.skills = append(v.skills, skill)
	}

	return v
}

// DefaultVocabulary returns the built-in skill dictionary used when the
// configuration does not provide one.
func DefaultVocabulary() Vocabulary {
	return NewVocabulary(
		"Python", "Django", "Flask", "FastAPI", "Pandas", "NumPy",
		"JavaScript", "Node.js", "React", "Angular", "Vue", "TypeScript",
		"Java", "Spring", "Hibernate", "Maven", "Kotlin",
		"Go", "Rust", "C++",
		"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch",
		"AWS", "Azure", "GCP",
		"Docker", "Kubernetes", "Terraform", "Ansible",
		"Git", "GitHub", "GitLab", "CI/CD", "Linux",
		"Machine Learning", "TensorFlow", "PyTorch", "scikit-learn",
		"Data Science", "Statistics", "R",
		"Kafka", "RabbitMQ", "GraphQL", "REST", "gRPC",
		"Airflow", "Spark", "ETL",
	)
}

// Skills returns the canonical skill names in vocabulary order.
func (v Vocabulary) Skills() []string {
	out := make([]string, len(v.skills))
	copy(out, v.skills)
	return out
}

func (v Vocabulary) Len() int {
	return len(v.skills)
}
