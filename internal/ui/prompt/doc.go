// Package prompt provides simple interactive prompts.
//
// The single prompt here is [Confirm], a yes/no question that defaults
// to "no". It renders to stderr so stdout stays scriptable. Callers
// must check that stdin is a terminal before prompting; commands that
// can run non-interactively take a --confirm flag instead.
package prompt
