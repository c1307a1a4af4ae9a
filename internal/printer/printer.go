// Package printer writes styled, human-readable status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/colonyops/listlayout/internal/core/styles"
)

type ctxKey struct{}

// Printer writes prefixed status lines to a writer.
type Printer struct {
	w io.Writer
}

// New returns a Printer that writes to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext attaches p to ctx.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) line(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

// Section writes a header line.
func (p *Printer) Section(title string) {
	p.line(styles.HeaderStyle.Render(title))
}

// Successf writes a line prefixed with a check mark.
func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.SuccessStyle.Render("✓") + " " + fmt.Sprintf(format, args...))
}

// Infof writes a line prefixed with an info marker.
func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.MutedStyle.Render("•") + " " + fmt.Sprintf(format, args...))
}

// Warnf writes a line prefixed with a warning marker.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.WarningStyle.Render("!") + " " + fmt.Sprintf(format, args...))
}

// Errorf writes a line prefixed with an error marker.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.ErrorStyle.Render("✗") + " " + fmt.Sprintf(format, args...))
}
