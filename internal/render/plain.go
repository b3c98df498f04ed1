package render

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexisbeaulieu97/searchviz/internal/app/visualizer"
	"github.com/alexisbeaulieu97/searchviz/internal/domain/search"
)

// Options configure the line presenters.
type Options struct {
	Delay   time.Duration
	Unicode bool
}

// Plain writes a readable transcript of a session, one line per frame.
type Plain struct {
	w       io.Writer
	pacer   *Pacer
	unicode bool
	target  int
}

// NewPlain creates a transcript presenter writing to w.
func NewPlain(w io.Writer, opts Options) *Plain {
	return &Plain{w: w, pacer: NewPacer(opts.Delay), unicode: opts.Unicode}
}

// Begin implements visualizer.Presenter.
func (p *Plain) Begin(_ context.Context, info visualizer.Info) error {
	p.target = info.Target
	_, err := fmt.Fprintf(p.w, "%s search for %d in [%s]\n", title(info.Algorithm), info.Target, search.Format(info.Sequence))
	return err
}

// Resorted implements visualizer.Presenter.
func (p *Plain) Resorted(_ context.Context, ev search.SortEvent) error {
	_, err := fmt.Fprintf(p.w, "warning: input was not sorted, searching [%s] %s [%s]\n",
		search.Format(ev.Before), p.glyph("→", "->"), search.Format(ev.After))
	return err
}

// Step implements visualizer.Presenter.
func (p *Plain) Step(ctx context.Context, step search.Step) error {
	if err := p.pacer.Wait(ctx); err != nil {
		return err
	}

	cmp := p.glyph("≠", "!=")
	if step.Matched {
		cmp = "="
	}
	line := fmt.Sprintf("step %d: index %d value %d %s %d", step.Comparisons, step.Index, step.Value, cmp, p.target)
	if step.Bounds != nil {
		line = fmt.Sprintf("%s  bounds [%d..%d]", line, step.Bounds.Left, step.Bounds.Right)
	}
	_, err := fmt.Fprintln(p.w, line)
	return err
}

// Finished implements visualizer.Presenter.
func (p *Plain) Finished(_ context.Context, res search.Result) error {
	var err error
	if res.Found {
		_, err = fmt.Fprintf(p.w, "found %d at index %d after %d comparisons\n", p.target, res.Index, res.TotalComparisons)
	} else {
		_, err = fmt.Fprintf(p.w, "%d not found after %d comparisons\n", p.target, res.TotalComparisons)
	}
	return err
}

func (p *Plain) glyph(unicode, ascii string) string {
	if p.unicode {
		return unicode
	}
	return ascii
}

func title(algo search.Algorithm) string {
	switch algo {
	case search.AlgorithmBinary:
		return "Binary"
	case search.AlgorithmLinear:
		return "Linear"
	}
	return string(algo)
}

var _ visualizer.Presenter = (*Plain)(nil)
