// Package tui is a terminal front end for the callback form. It drives the
// same form.Controller the landing page script mirrors, against a running
// server.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"aquaflow/pkg/form"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	buttonStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 2).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#DC2626"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#5B8DEF")).Padding(1, 2)
)

// snapshotMsg carries a controller state change into the update loop
type snapshotMsg form.Snapshot

// Model is the bubbletea model for the callback form
type Model struct {
	ctrl    *form.Controller
	updates chan form.Snapshot
	input   textinput.Model
	spinner spinner.Model
	snap    form.Snapshot
	title   string
	server  string
}

// New builds the model. Controller changes arrive on goroutines outside the
// update loop, so they are funnelled through a channel and read back as
// messages.
func New(submitter form.Submitter, title, server string, opts ...form.Option) Model {
	updates := make(chan form.Snapshot, 16)
	opts = append(opts, form.WithOnChange(func(s form.Snapshot) {
		updates <- s
	}))
	ctrl := form.New(submitter, opts...)

	input := textinput.New()
	input.Placeholder = "Enter your phone number..."
	input.CharLimit = 32
	input.Width = 32
	input.Focus()

	return Model{
		ctrl:    ctrl,
		updates: updates,
		input:   input,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		snap:    ctrl.Snapshot(),
		title:   title,
		server:  server,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForChange())
}

func (m Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(<-m.updates)
	}
}

func (m Model) submit() tea.Cmd {
	return func() tea.Msg {
		m.ctrl.Submit(context.Background())
		return nil
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.ctrl.Disabled() {
				return m, nil
			}
			return m, m.submit()
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.ctrl.SetPhone(m.input.Value())
		m.snap = m.ctrl.Snapshot()
		return m, cmd

	case snapshotMsg:
		m.snap = form.Snapshot(msg)
		cmds := []tea.Cmd{m.waitForChange()}
		if m.snap.State == form.Loading {
			cmds = append(cmds, m.spinner.Tick)
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		if m.snap.State != form.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("Instant callback via %s", m.server)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	label := m.snap.ButtonLabel()
	if m.snap.State == form.Loading {
		label = m.spinner.View() + " " + label
	}
	button := buttonStyle
	switch {
	case m.snap.State == form.Success:
		button = button.Background(lipgloss.Color("#16A34A"))
	case m.ctrl.Disabled():
		button = button.Faint(true)
	}
	b.WriteString(button.Render(label))

	if m.snap.Message != "" {
		b.WriteString("\n\n")
		switch m.snap.State {
		case form.Success:
			b.WriteString(successStyle.Render(m.snap.Message))
		case form.Error:
			b.WriteString(errorStyle.Render(m.snap.Message))
		default:
			b.WriteString(m.snap.Message)
		}
	}

	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render("enter: request callback • esc: quit"))

	return boxStyle.Render(b.String())
}
