// Package tui renders the counter in a terminal.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iburimskiy/heartclock/internal/counter"
)

var labels = [6]string{"years", "months", "days", "hours", "minutes", "seconds"}

var (
	accent = lipgloss.Color("#78E6C4")

	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).Width(9).Align(lipgloss.Center)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(9).Align(lipgloss.Center)
	frameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2)
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

type tickMsg time.Time

// Model is the bubbletea model of the terminal counter.
type Model struct {
	counter  *counter.Counter
	interval time.Duration
	reading  counter.Reading
}

// New creates a model that refreshes c every counter.TickInterval.
func New(c *counter.Counter) Model {
	return Model{
		counter:  c,
		interval: counter.TickInterval,
		reading:  c.Tick(),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tickMsg:
		m.reading = m.counter.Tick()
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	fields := m.reading.Breakdown.Fields()
	cols := make([]string, len(fields))
	for i, v := range fields {
		cols[i] = lipgloss.JoinVertical(lipgloss.Center, valueStyle.Render(v), labelStyle.Render(labels[i]))
	}

	caption := "together since "
	if !m.reading.Started {
		caption = "counting starts "
	}
	caption += m.counter.Reference().Format("02/01/2006 15:04")

	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Top, cols...),
		"",
		caption,
	)

	var b strings.Builder
	b.WriteString(frameStyle.Render(body))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("q to quit"))
	b.WriteString("\n")
	return b.String()
}

// Run shows the counter until the user quits.
func Run(c *counter.Counter, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(c), opts...).Run()
	return err
}
