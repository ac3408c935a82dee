// Package output carries the stdout printer through the context. Primary
// data (tables, paths, URLs, JSON) goes through this package; diagnostics
// and progress stay on stderr via the log package, so pipelines see only
// the data they asked for.
package output

import (
	"context"
	"fmt"
	"io"
	"os"
)

type ctxKey struct{}

// Printer writes primary command output.
type Printer struct {
	w io.Writer
}

// stdout is the fallback for contexts without an attached printer.
var stdout = &Printer{w: os.Stdout}

// WithPrinter returns a context whose Printer writes to w.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, &Printer{w: w})
}

// FromContext returns the context's Printer, or one writing to os.Stdout
// when none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return stdout
}

// Print writes output without a newline.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Writer exposes the underlying writer for encoders that need one.
func (p *Printer) Writer() io.Writer {
	return p.w
}
