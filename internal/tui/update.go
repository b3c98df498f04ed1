package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/searchviz/internal/app/visualizer"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pullMsg:
		if msg.gen != m.gen || m.paused || m.finished {
			return m, nil
		}
		return m.advance()
	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	frame, ok := m.session.Next(m.ctx)
	if !ok {
		m.finished = true
		return m, tea.Quit
	}

	switch frame.Kind {
	case visualizer.FrameResort:
		ev := frame.Sort
		m.sort = &ev
	case visualizer.FrameStep:
		m.steps = append(m.steps, frame.Step)
	case visualizer.FrameResult:
		res := frame.Result
		m.result = &res
		m.finished = true
		return m, tea.Quit
	}

	return m, m.schedule()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if !m.finished {
			m.session.Close(m.ctx)
			m.cancelled = true
			m.finished = true
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.finished {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Faster):
		if m.delay > minDelay {
			m.delay = max(m.delay/2, minDelay)
		}
	case key.Matches(msg, m.keys.Slower):
		m.delay = min(max(m.delay*2, minDelay), maxDelay)
	default:
		return m, nil
	}

	m.gen++
	return m, m.schedule()
}
