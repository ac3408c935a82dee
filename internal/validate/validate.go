// Package validate checks user-supplied names before any external command
// sees them. Slugs are the short feature names wtf turns into branches and
// worktree directories; branch names follow git's ref-name rules.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// MaxSlugLen caps feature names so derived paths stay manageable.
const MaxSlugLen = 100

// Error reports a rejected user-supplied value. No command is executed
// after a validation failure.
type Error struct {
	What   string // "slug", "branch name", ...
	Value  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.What, e.Value, e.Reason)
}

var slugRe = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Slug checks a feature name: lowercase letters, digits and hyphens,
// starting with an alphanumeric.
func Slug(s string) error {
	if s == "" {
		return &Error{What: "slug", Value: s, Reason: "must not be empty"}
	}
	if len(s) > MaxSlugLen {
		return &Error{What: "slug", Value: s, Reason: fmt.Sprintf("longer than %d characters", MaxSlugLen)}
	}
	if !slugRe.MatchString(s) {
		return &Error{What: "slug", Value: s, Reason: "use lowercase letters, digits and hyphens, starting with a letter or digit"}
	}
	return nil
}

// Slugify normalizes a human-readable feature description into a valid slug:
// lowercased, whitespace and underscores become hyphens, everything else
// outside [a-z0-9-] is dropped, runs of hyphens collapse.
func Slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '_', r == '-':
			b.WriteRune('-')
		}
	}
	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}

// BranchName checks a full branch name against git's ref-name rules.
func BranchName(name string) error {
	fail := func(reason string) error {
		return &Error{What: "branch name", Value: name, Reason: reason}
	}

	if name == "" {
		return fail("must not be empty")
	}
	if name == "HEAD" {
		return fail("HEAD is reserved")
	}
	if strings.ContainsAny(name, "~^:?*[\\") {
		return fail(`must not contain any of ~ ^ : ? * [ \`)
	}
	for _, r := range name {
		if unicode.IsSpace(r) {
			return fail("must not contain whitespace")
		}
		if unicode.IsControl(r) {
			return fail("must not contain control characters")
		}
	}
	if strings.Contains(name, "..") {
		return fail(`must not contain ".."`)
	}
	if strings.Contains(name, "@{") {
		return fail(`must not contain "@{"`)
	}
	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return fail("must not start or end with a slash")
	}
	if strings.HasSuffix(name, ".lock") {
		return fail(`must not end with ".lock"`)
	}
	return nil
}
