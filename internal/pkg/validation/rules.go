package validation

import (
	"regexp"
	"strings"
)

// Validation rule constants
var (
	// EmailPattern is the basic shape check applied before the
	// university predicate.
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	UsernameMinLength    = 3
	DisplayNameMinLength = 2
	PasswordMinLength    = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsUniversityEmail reports whether the address satisfies the
// university-domain predicate: ends in ".edu", or contains the
// substring "university", or contains "edu." anywhere.
func IsUniversityEmail(email string) bool {
	return strings.HasSuffix(email, ".edu") ||
		strings.Contains(email, "university") ||
		strings.Contains(email, "edu.")
}
