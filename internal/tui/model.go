package tui

import (
	"context"
	"math/bits"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/searchviz/internal/app/visualizer"
	"github.com/alexisbeaulieu97/searchviz/internal/domain/search"
)

const (
	minDelay = 10 * time.Millisecond
	maxDelay = 10 * time.Second
	logLines = 8
)

// Options tune the interactive presenter.
type Options struct {
	Delay   time.Duration
	Unicode bool
}

// pullMsg asks the model to fetch the next frame. Messages from an older
// generation are dropped so pausing or changing speed never doubles the pace.
type pullMsg struct {
	gen int
}

// Model is the Bubbletea state for an animated search session. It pulls one
// frame from the session per tick and stops pulling once the user quits.
type Model struct {
	ctx     context.Context
	session *visualizer.Session
	info    visualizer.Info

	sort   *search.SortEvent
	steps  []search.Step
	result *search.Result

	delay     time.Duration
	gen       int
	paused    bool
	finished  bool
	cancelled bool
	unicode   bool

	spinner spinner.Model
	keys    keyMap
	help    help.Model
}

// NewModel constructs a model bound to session.
func NewModel(ctx context.Context, session *visualizer.Session, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Line
	if opts.Unicode {
		s.Spinner = spinner.Dot
	}
	s.Style = runningStyle

	return Model{
		ctx:     ctx,
		session: session,
		info:    session.Info(),
		delay:   max(opts.Delay, 0),
		unicode: opts.Unicode,
		spinner: s,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Run shows session in an interactive program until the result frame is
// rendered or the user quits, and returns the final model.
func Run(ctx context.Context, session *visualizer.Session, opts Options, programOpts ...tea.ProgramOption) (Model, error) {
	programOpts = append([]tea.ProgramOption{tea.WithContext(ctx)}, programOpts...)
	final, err := tea.NewProgram(NewModel(ctx, session, opts), programOpts...).Run()
	if err != nil {
		return Model{}, err
	}
	m, _ := final.(Model)
	return m, nil
}

// Init pulls the first frame immediately and starts the spinner.
func (m Model) Init() tea.Cmd {
	gen := m.gen
	return tea.Batch(m.spinner.Tick, func() tea.Msg { return pullMsg{gen: gen} })
}

// Result returns the outcome once the result frame has been rendered.
func (m Model) Result() (search.Result, bool) {
	if m.result == nil {
		return search.Result{}, false
	}
	return *m.result, true
}

// Cancelled reports whether the user quit before the result.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Paused reports whether pulling is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// Delay returns the current pause between frames.
func (m Model) Delay() time.Duration {
	return m.delay
}

// Steps returns the probes rendered so far.
func (m Model) Steps() []search.Step {
	out := make([]search.Step, len(m.steps))
	copy(out, m.steps)
	return out
}

func (m Model) schedule() tea.Cmd {
	if m.paused || m.finished {
		return nil
	}
	gen := m.gen
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return pullMsg{gen: gen} })
}

func (m Model) current() *search.Step {
	if len(m.steps) == 0 {
		return nil
	}
	step := m.steps[len(m.steps)-1]
	return &step
}

// cells returns the values being scanned: the sorted copy once the re-sort
// has been shown, the input as typed before that.
func (m Model) cells() []int {
	if m.sort != nil {
		return m.sort.After
	}
	return m.info.Sequence
}

func worstCase(algo search.Algorithm, n int) int {
	if algo == search.AlgorithmBinary {
		return bits.Len(uint(n))
	}
	return n
}
