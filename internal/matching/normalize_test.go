package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkill(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lower-cases", "Python", "python"},
		{"strips punctuation", "Node.js", "nodejs"},
		{"strips spaces", "  Machine Learning ", "machinelearning"},
		{"strips symbols", "C++", "c"},
		{"keeps digits", "ES2015", "es2015"},
		{"drops non-ascii letters", "Café", "caf"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSkill(tt.input))
		})
	}
}

func TestSkillsMatch(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected bool
	}{
		{"synonym javascript/js", "JavaScript", "js", true},
		{"substring react/reactjs", "React", "ReactJS", true},
		{"different languages", "Python", "Java", false},
		{"exact after normalization", "Node.js", "nodejs", true},
		{"synonym kubernetes/k8s", "k8s", "Kubernetes", true},
		{"synonym aws", "AWS", "Amazon Web Services", true},
		{"synonym multi-word", "ML", "machine learning", true},
		{"synonym golang/go", "Go", "Golang", true},
		{"synonym mongo/nosql", "MongoDB", "NoSQL", true},
		{"symmetric", "js", "JavaScript", true},
		{"unrelated", "Rust", "Ruby", false},
		{"empty left", "", "go", false},
		{"empty right", "go", "", false},
		{"both empty", "", "", false},
		{"punctuation only", "!!!", "go", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SkillsMatch(tt.a, tt.b))
		})
	}
}

func TestSynonymGroups_IndexAllTerms(t *testing.T) {
	for canonical, aliases := range skillSynonyms {
		key := NormalizeSkill(canonical)
		assert.Contains(t, synonymGroups, key, "canonical %q not indexed", canonical)
		for _, alias := range aliases {
			assert.True(t, sameSynonymGroup(key, NormalizeSkill(alias)), "%q should share a group with %q", alias, canonical)
		}
	}
}

func TestHasSkill(t *testing.T) {
	skills := []string{"Python", "PostgreSQL", "Docker"}

	assert.True(t, hasSkill(skills, "postgres"))
	assert.True(t, hasSkill(skills, "py"))
	assert.False(t, hasSkill(skills, "Rust"))
	assert.False(t, hasSkill(nil, "Python"))
}
