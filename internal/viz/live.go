package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const historyCapacity = 600

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// IterationMsg reports one fixed-point iteration to the monitor.
type IterationMsg struct {
	Iteration int
	Elapsed   time.Duration
	RMS       float64
}

// DoneMsg ends the monitor; Err carries the solve failure, if any.
type DoneMsg struct {
	Err error
}

// Monitor is a bubbletea model that charts the residual while a solve
// runs in another goroutine. Quitting cancels the solve through the
// supplied cancel function.
type Monitor struct {
	updates    <-chan tea.Msg
	cancel     context.CancelFunc
	title      string
	iteration  int
	rms        float64
	elapsed    time.Duration
	rmsHistory []float64
	finished   bool
	err        error
}

func NewMonitor(title string, updates <-chan tea.Msg, cancel context.CancelFunc) Monitor {
	return Monitor{
		updates:    updates,
		cancel:     cancel,
		title:      title,
		rmsHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Monitor) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-m.updates
		if !ok {
			return DoneMsg{}
		}
		return msg
	}
}

func (m Monitor) Init() tea.Cmd {
	return m.waitForUpdate()
}

func (m Monitor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.cancel()
			return m, tea.Quit
		}
	case IterationMsg:
		m.iteration = msg.Iteration
		m.rms = msg.RMS
		m.elapsed = msg.Elapsed
		m.rmsHistory = append(m.rmsHistory, msg.RMS)
		if len(m.rmsHistory) > historyCapacity {
			m.rmsHistory = m.rmsHistory[1:]
		}
		return m, m.waitForUpdate()
	case DoneMsg:
		m.finished = true
		m.err = msg.Err
		return m, tea.Quit
	}
	return m, nil
}

func (m Monitor) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.title)) + "\n")

	switch {
	case !m.finished:
		s.WriteString(valueStyle.Render("SOLVING") + "\n\n")
	case m.err != nil:
		s.WriteString(failStyle.Render("FAILED: "+m.err.Error()) + "\n\n")
	default:
		s.WriteString(okStyle.Render("CONVERGED") + "\n\n")
	}

	if len(m.rmsHistory) > 1 {
		chart := asciigraph.Plot(logRMS(m.rmsHistory),
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("log10 rms residual"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(valueStyle.Render(fmt.Sprintf("iteration  %d", m.iteration)) + "\n")
	s.WriteString(valueStyle.Render(fmt.Sprintf("rms        %.3e", m.rms)) + "\n")
	s.WriteString(valueStyle.Render(fmt.Sprintf("elapsed    %s", m.elapsed.Round(time.Millisecond))) + "\n")
	s.WriteString(helpStyle.Render("Q:Cancel"))
	return s.String()
}

// Err reports the solve failure the monitor observed, if any.
func (m Monitor) Err() error { return m.err }
