package validation

import (
	"context"
	"regexp"
	"strings"
)

// RFC-5322-lite: local@domain.tld with at least one dot in the domain.
// Intentionally forgiving; the address is never dereferenced here.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func NotBlank(s string) bool { return strings.TrimSpace(s) != "" }

func MinLen(s string, n int) bool { return len([]rune(s)) >= n }

func EmailValid(s string) bool { return emailRe.MatchString(s) }

// Static lifts a context-free predicate into a Rule check.
func Static(ok bool) func(ctx context.Context) (bool, error) {
	return func(context.Context) (bool, error) { return ok, nil }
}
