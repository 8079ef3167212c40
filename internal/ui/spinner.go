package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunSpinner runs a Bubble Tea spinner while executing the given action.
// Lines logged through log replace the spinner text while it runs, so
// verbose output cannot corrupt the display. Falls back to running the
// action directly when stdout is not a terminal, so piped output stays
// stable.
func RunSpinner(ctx context.Context, title string, log *UILogger, action func() error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !isInteractive() {
		return action()
	}
	m := newSpinnerModel(ctx, title, action)
	p := tea.NewProgram(m)
	if log != nil {
		log.attach(func(text string) { p.Send(statusMsg(text)) })
		defer log.detach()
	}
	if _, err := p.Run(); err != nil {
		return err
	}
	return m.err
}

func isInteractive() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// statusMsg replaces the spinner text while the action runs.
type statusMsg string

type actionDoneMsg struct{ err error }

type spinnerModel struct {
	ctx    context.Context
	text   string
	spin   spinner.Model
	result chan error
	done   bool
	err    error
	style  lipgloss.Style
}

func newSpinnerModel(ctx context.Context, title string, action func() error) *spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := &spinnerModel{
		ctx:    ctx,
		text:   title,
		spin:   s,
		result: make(chan error, 1),
		style:  lipgloss.NewStyle().Padding(0, 1),
	}

	// The action reports completion over the channel; done and err are
	// only mutated on the program goroutine in Update.
	go func() { m.result <- action() }()

	return m
}

func (m *spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, waitForCompletion(m))
}

// waitForCompletion blocks until the action finishes or the context is
// canceled. Issued once from Init.
func waitForCompletion(m *spinnerModel) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return actionDoneMsg{err: m.ctx.Err()}
		case err := <-m.result:
			return actionDoneMsg{err: err}
		}
	}
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.done = true
			m.err = fmt.Errorf("operation canceled")
			return m, tea.Quit
		}
	case statusMsg:
		m.text = string(msg)
		return m, nil
	case actionDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.done {
		if m.err != nil {
			return m.style.Render("✗ " + m.text + " (" + m.err.Error() + ")\n")
		}
		return m.style.Render("✓ " + m.text + "\n")
	}
	return m.style.Render(m.spin.View() + " " + m.text)
}
