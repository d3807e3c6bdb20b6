package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUniversityEmail(t *testing.T) {
	accepted := []string{
		"alice@mit.edu",
		"bob@stanford.edu",
		"carol@university.com",
		"dave@myuniversity.org",
		"eve@campus.edu.br",
	}
	for _, email := range accepted {
		assert.True(t, IsUniversityEmail(email), email)
	}

	rejected := []string{
		"frank@gmail.com",
		"grace@techcorp.io",
		"heidi@example.org",
	}
	for _, email := range rejected {
		assert.False(t, IsUniversityEmail(email), email)
	}
}

func TestEmailPattern(t *testing.T) {
	assert.True(t, CompiledPatterns.Email.MatchString("alice@mit.edu"))
	assert.False(t, CompiledPatterns.Email.MatchString("not-an-email"))
	assert.False(t, CompiledPatterns.Email.MatchString("missing@tld"))
}
