package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/ports/driving"
)

// pullEventMsg wraps a pull progress event for the UI.
type pullEventMsg driving.PullEvent

// pullDoneMsg signals that the pull goroutine finished.
type pullDoneMsg struct {
	err error
}

// pullModel renders download progress: a spinner for the artifact in
// flight, a bar for overall completion, and one line per finished
// artifact.
type pullModel struct {
	spinner  spinner.Model
	progress progress.Model
	current  string
	total    int
	done     int
	lines    []string
	err      error
	finished bool
}

func newPullModel() pullModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return pullModel{
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

// runPullUI drives the pull through a bubbletea program. Events are
// forwarded from the pulling goroutine into the UI.
func runPullUI(ctx context.Context, puller driving.Puller) error {
	p := tea.NewProgram(newPullModel())

	go func() {
		err := puller.Pull(ctx, func(ev driving.PullEvent) {
			p.Send(pullEventMsg(ev))
		})
		p.Send(pullDoneMsg{err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(pullModel); ok && m.err != nil {
		return m.err
	}
	return nil
}

func (m pullModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m pullModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.err = context.Canceled
			return m, tea.Quit
		}
		return m, nil

	case pullEventMsg:
		m.total = msg.Total
		switch {
		case msg.Err != nil:
			m.lines = append(m.lines, fmt.Sprintf("x %s: %v", msg.Name, msg.Err))
		case msg.Done:
			m.done++
			m.lines = append(m.lines, fmt.Sprintf("· %s (%d bytes)", msg.Name, msg.Bytes))
			m.current = ""
			return m, m.progress.SetPercent(float64(m.done) / float64(m.total))
		default:
			m.current = msg.Name
		}
		return m, nil

	case pullDoneMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit

	case progress.FrameMsg:
		pm, cmd := m.progress.Update(msg)
		if p, ok := pm.(progress.Model); ok {
			m.progress = p
		}
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	default:
		return m, nil
	}
}

func (m pullModel) View() string {
	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.current != "" && !m.finished {
		fmt.Fprintf(&b, "%s fetching %s\n", m.spinner.View(), m.current)
	}
	if m.total > 0 {
		b.WriteString(m.progress.View())
		b.WriteString("\n")
	}
	return b.String()
}
