package engine

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateEmail checks that email has a non-empty local part, exactly one @,
// and a non-empty domain containing a dot. Whitespace is not allowed anywhere.
func ValidateEmail(email string) error {
	if strings.IndexFunc(email, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: contains whitespace", ErrInvalidEmail)
	}
	if strings.Count(email, "@") != 1 {
		return fmt.Errorf("%w: want exactly one @", ErrInvalidEmail)
	}

	local, domain, _ := strings.Cut(email, "@")
	if local == "" {
		return fmt.Errorf("%w: empty local part", ErrInvalidEmail)
	}
	if domain == "" {
		return fmt.Errorf("%w: empty domain", ErrInvalidEmail)
	}
	if !strings.Contains(domain, ".") {
		return fmt.Errorf("%w: domain %q has no dot", ErrInvalidEmail, domain)
	}
	return nil
}
