package main

import "fmt"

// preconditionError reports repository or environment state that blocks a
// command before any mutating operation has run: a missing remote, an
// unmerged branch, a dirty tree, a missing --confirm.
type preconditionError struct {
	msg string
}

func (e *preconditionError) Error() string { return e.msg }

func preconditionf(format string, args ...any) error {
	return &preconditionError{msg: fmt.Sprintf(format, args...)}
}
