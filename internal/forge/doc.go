// Package forge provides an abstraction layer for git hosting services.
//
// The package supports GitHub (via gh CLI) and GitLab (via glab CLI), enabling
// wtf commands to work with both platforms without duplicating logic.
//
// # Forge Interface
//
// The [Forge] interface defines operations for:
//
//   - Checking CLI availability and authentication
//   - Resolving the authenticated username
//   - Fetching PR/MR information for a branch
//   - Creating and viewing PRs
//
// # Platform Detection
//
// Use [Detect] to determine the forge for a repository. An explicitly
// configured forge name wins; otherwise the origin remote URL's host
// decides, falling back to GitHub.
//
// # Platform Differences
//
// PR state names differ between platforms (OPEN/MERGED/CLOSED on GitHub,
// opened/merged/closed on GitLab). Implementations normalize states to the
// PRState constants, so callers compare against those only.
//
// Any feature involving forge operations must implement both GitHub and
// GitLab. Never call gh or glab directly outside this package.
package forge
