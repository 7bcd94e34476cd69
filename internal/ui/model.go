package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/classfocus/internal/lifecycle"
	"github.com/ayoisaiah/classfocus/internal/timeutil"
	"github.com/ayoisaiah/classfocus/internal/tracker"
)

// SnapshotMsg carries a tracker state change into the view.
type SnapshotMsg tracker.Snapshot

type keyMap struct {
	help key.Binding
	quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.help, k.quit}}
}

var defaultKeymap = keyMap{
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type styles struct {
	base       lipgloss.Style
	title      lipgloss.Style
	hint       lipgloss.Style
	focused    lipgloss.Style
	distracted lipgloss.Style
	idle       lipgloss.Style
	ended      lipgloss.Style
	label      lipgloss.Style
}

func newStyles(dark bool) styles {
	fg := lipgloss.Color("#1F1F1F")
	if dark {
		fg = lipgloss.Color("#FAFAFA")
	}

	return styles{
		base: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2),
		title:      lipgloss.NewStyle().Bold(true).Foreground(fg),
		hint:       lipgloss.NewStyle().Foreground(lipgloss.Color("#7A7A7A")),
		focused:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")),
		distracted: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		idle:       lipgloss.NewStyle().Foreground(lipgloss.Color("#12EAEA")),
		ended:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7DC6F")),
		label:      lipgloss.NewStyle().Width(12).Foreground(fg),
	}
}

// Model is the terminal tracking view. Terminal focus changes reported by
// bubbletea are published to the lifecycle broadcaster, which makes the
// view itself the tracker's lifecycle source.
type Model struct {
	source         *lifecycle.Broadcaster
	keys           keyMap
	help           help.Model
	styles         styles
	snap           tracker.Snapshot
	twentyFourHour bool
	showHelp       bool
}

func NewModel(
	source *lifecycle.Broadcaster,
	darkTheme, twentyFourHour bool,
) Model {
	return Model{
		source:         source,
		keys:           defaultKeymap,
		help:           help.New(),
		styles:         newStyles(darkTheme),
		twentyFourHour: twentyFourHour,
	}
}

// ProgramOptions returns the options the model relies on.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{tea.WithReportFocus()}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(SnapshotMsg); !ok {
		slog.Debug(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case tea.FocusMsg:
		m.source.Publish(lifecycle.Foreground)

	case tea.BlurMsg:
		m.source.Publish(lifecycle.Background)

	case SnapshotMsg:
		m.snap = tracker.Snapshot(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.help):
			m.showHelp = !m.showHelp
		}
	}

	return m, nil
}

func (m Model) modeStyle() lipgloss.Style {
	switch m.snap.Mode {
	case tracker.Focused:
		return m.styles.focused
	case tracker.Distracted:
		return m.styles.distracted
	case tracker.Ended:
		return m.styles.ended
	}

	return m.styles.idle
}

func (m Model) counter(label string, secs int) string {
	return m.styles.label.Render(label) + timeutil.FormatSeconds(secs)
}

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(m.modeStyle().Render(strings.ToUpper(m.snap.Mode.String())))

	switch m.snap.Mode {
	case tracker.Idle:
		s.WriteString("\n\n" + m.styles.title.Render("No class in session"))
		s.WriteString("\n" + m.styles.hint.Render("waiting for the next class to start"))
	default:
		session := m.snap.Session

		s.WriteString("  " + m.styles.title.Render(session.Subject))
		s.WriteString(" " + m.styles.hint.Render(
			fmt.Sprintf("%s-%s", session.Time, session.EndTime),
		))

		if m.snap.Mode != tracker.Ended {
			s.WriteString("\n" + m.styles.hint.Render(
				"until "+m.snap.EndsAt.Format(TimeFormat(m.twentyFourHour)),
			))
		}

		s.WriteString("\n\n" + m.counter("Focused", m.snap.FocusedSeconds))
		s.WriteString("\n" + m.counter("Distracted", m.snap.DistractedSeconds))
		s.WriteString("\n" + m.styles.label.Render("Reminders") + fmt.Sprint(m.snap.Reminders))
	}

	if m.showHelp {
		s.WriteString("\n\n" + m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		s.WriteString("\n\n" + m.help.ShortHelpView(m.keys.ShortHelp()))
	}

	return m.styles.base.Render(s.String())
}
