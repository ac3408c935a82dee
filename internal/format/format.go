package format

import (
	"fmt"
	"regexp"
	"strings"
)

// Placeholders accepted by the worktree dir format.
var worktreeDirPlaceholders = []string{"{repo}", "{branch}", "{slug}"}

// Placeholders accepted by the PR body template.
var bodyPlaceholders = []string{"{commits}", "{branch}", "{base}"}

// placeholderRe matches {placeholder-name} patterns.
var placeholderRe = regexp.MustCompile(`\{[a-z-]+\}`)

// ValidateWorktreeDir checks a worktree dir format string: every placeholder
// must be known, and at least one of {branch} or {slug} must appear so that
// distinct features resolve to distinct directories.
func ValidateWorktreeDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("must not be empty")
	}
	if err := checkPlaceholders(dir, worktreeDirPlaceholders); err != nil {
		return err
	}
	if !strings.Contains(dir, "{branch}") && !strings.Contains(dir, "{slug}") {
		return fmt.Errorf("%q must contain {branch} or {slug}", dir)
	}
	return nil
}

// ValidateBodyTemplate checks a PR body template for unknown placeholders.
func ValidateBodyTemplate(tmpl string) error {
	return checkPlaceholders(tmpl, bodyPlaceholders)
}

func checkPlaceholders(s string, valid []string) error {
	for _, match := range placeholderRe.FindAllString(s, -1) {
		known := false
		for _, v := range valid {
			if match == v {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown placeholder %q (valid: %s)", match, strings.Join(valid, ", "))
		}
	}
	return nil
}

// WorktreeDir applies the dir format. Values are sanitized so branch names
// like "feat/x" become path-safe components.
func WorktreeDir(dir, repo, branch, slug string) string {
	out := dir
	out = strings.ReplaceAll(out, "{repo}", SanitizeForPath(repo))
	out = strings.ReplaceAll(out, "{branch}", SanitizeForPath(branch))
	out = strings.ReplaceAll(out, "{slug}", SanitizeForPath(slug))
	return out
}

// Body renders a PR body template. {commits} becomes one "- subject" bullet
// per commit in the given order.
func Body(tmpl string, commits []string, branch, base string) string {
	bullets := make([]string, len(commits))
	for i, c := range commits {
		bullets[i] = "- " + c
	}
	out := tmpl
	out = strings.ReplaceAll(out, "{commits}", strings.Join(bullets, "\n"))
	out = strings.ReplaceAll(out, "{branch}", branch)
	out = strings.ReplaceAll(out, "{base}", base)
	return out
}

// SanitizeForPath replaces characters that are problematic in file paths.
// Replaces: / \ : * ? " < > | with -
func SanitizeForPath(name string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"\"", "-",
		"<", "-",
		">", "-",
		"|", "-",
	)
	return replacer.Replace(name)
}
