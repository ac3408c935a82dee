// Package doctor runs the preflight checks behind "wtf doctor".
//
// The checks cover everything the other commands assume about the
// environment:
//
//   - git is installed
//   - the current directory is inside a git work tree
//   - the origin remote exists and its URL parses to owner/name
//   - the fork owner can be derived from origin
//   - the upstream repository resolves, either from the upstream remote
//     or from the repo.upstream config key
//   - the configured base branch exists locally
//   - the forge CLI (gh or glab) is installed and authenticated
//   - the working tree is clean (dirty is reported as a warning)
//
// Each check yields a [Result] with an ok/warn/fail [Status] and an
// optional fix hint. [Run] prints one line per check and returns an
// error when any check failed, which the command maps to a non-zero
// exit. Doctor never mutates the repository.
package doctor
