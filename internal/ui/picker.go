// Package ui implements the interactive application picker shown when the
// uninstall command runs on a TTY with no arguments.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appsweep/appsweep/internal/apps"
	"github.com/appsweep/appsweep/internal/core"
)

type scanDoneMsg struct {
	apps []apps.App
	err  error
}

// PickerModel is a multi-select list over installed applications.
type PickerModel struct {
	scan func() ([]apps.App, error)

	apps     []apps.App
	selected map[int]bool
	cursor   int
	offset   int
	filter   string

	loading   bool
	spinner   spinner.Model
	err       error
	confirmed bool

	width  int
	height int
}

// NewPicker returns a picker that loads applications through scan.
func NewPicker(scan func() ([]apps.App, error)) PickerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return PickerModel{
		scan:     scan,
		selected: make(map[int]bool),
		loading:  true,
		spinner:  sp,
		width:    80,
		height:   24,
	}
}

// Selection returns the chosen applications, or nil when the picker was
// quit without confirming.
func (m PickerModel) Selection() []apps.App {
	if !m.confirmed {
		return nil
	}
	items := m.visible()
	var chosen []apps.App
	for i := range items {
		if m.selected[i] {
			chosen = append(chosen, items[i])
		}
	}
	return chosen
}

// Err returns the scan error, if any.
func (m PickerModel) Err() error { return m.err }

func (m PickerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.doScan())
}

func (m PickerModel) doScan() tea.Cmd {
	return func() tea.Msg {
		found, err := m.scan()
		return scanDoneMsg{apps: found, err: err}
	}
}

// visible returns the apps matching the current filter.
func (m PickerModel) visible() []apps.App {
	if m.filter == "" {
		return m.apps
	}
	var out []apps.App
	for _, a := range m.apps {
		if a.Match(m.filter) {
			out = append(out, a)
		}
	}
	return out
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case scanDoneMsg:
		m.loading = false
		m.apps = msg.apps
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m PickerModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" || key == "esc" {
		m.confirmed = false
		return m, tea.Quit
	}

	if m.loading {
		return m, nil
	}

	items := m.visible()
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
			m.ensureVisible()
		}
	case " ":
		if m.selected[m.cursor] {
			delete(m.selected, m.cursor)
		} else {
			m.selected[m.cursor] = true
		}
	case "a":
		if len(m.selected) == len(items) {
			m.selected = make(map[int]bool)
		} else {
			for i := range items {
				m.selected[i] = true
			}
		}
	case "enter":
		if len(m.selected) > 0 {
			m.confirmed = true
			return m, tea.Quit
		}
	case "backspace":
		if m.filter != "" {
			m.filter = m.filter[:len(m.filter)-1]
			m.resetCursor()
		}
	default:
		if len(key) == 1 && key != "q" {
			m.filter += key
			m.resetCursor()
		} else if key == "q" && m.filter == "" {
			m.confirmed = false
			return m, tea.Quit
		} else if key == "q" {
			m.filter += key
			m.resetCursor()
		}
	}
	return m, nil
}

func (m *PickerModel) resetCursor() {
	m.cursor = 0
	m.offset = 0
	m.selected = make(map[int]bool)
}

func (m *PickerModel) ensureVisible() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m PickerModel) visibleRows() int {
	// Reserve lines for title(2) + status(2) + help(2).
	rows := m.height - 6
	if rows < 5 {
		rows = 5
	}
	return rows
}

func (m PickerModel) View() string {
	s := renderHeader("uninstall")

	if m.loading {
		s += m.spinner.View() + " Scanning installed applications...\n"
		s += renderFooter("esc cancel")
		return s
	}
	if m.err != nil {
		s += fmt.Sprintf("  Scan failed: %v\n", m.err)
		return s + renderFooter("esc quit")
	}

	items := m.visible()
	if len(items) == 0 {
		if m.filter != "" {
			s += dimStyle.Render(fmt.Sprintf("  No applications match %q.", m.filter)) + "\n"
			return s + renderFooter("backspace clear filter | esc quit")
		}
		s += "  No applications found.\n"
		return s + renderFooter("esc quit")
	}

	if m.filter != "" {
		s += dimStyle.Render("  filter: "+m.filter) + "\n\n"
	}

	rows := m.visibleRows()
	end := m.offset + rows
	if end > len(items) {
		end = len(items)
	}

	for i := m.offset; i < end; i++ {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		check := "[ ]"
		if m.selected[i] {
			check = "[x]"
		}
		line := fmt.Sprintf("%s%s %s", cursor, check, items[i].DisplayName)
		if items[i].SizeKB > 0 {
			line += "  " + dimStyle.Render(core.FormatKB(items[i].SizeKB))
		}
		if items[i].BundleID != "" {
			line += "  " + dimStyle.Render(items[i].BundleID)
		}
		if i == m.cursor {
			s += selectedStyle.Render(stripStyles(line)) + "\n"
		} else {
			s += line + "\n"
		}
	}

	if len(items) > rows {
		s += dimStyle.Render(fmt.Sprintf("  [%d-%d of %d]", m.offset+1, end, len(items))) + "\n"
	}

	s += "\n" + statusStyle.Render(fmt.Sprintf(" %d selected ", len(m.selected)))
	s += renderFooter("j/k navigate | space select | a toggle all | type to filter | enter continue | esc cancel")
	return s
}

// stripStyles drops nested ANSI styling so the selection highlight applies
// to the whole line.
func stripStyles(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RunPicker shows the picker and returns the confirmed selection.
func RunPicker(scan func() ([]apps.App, error)) ([]apps.App, error) {
	final, err := tea.NewProgram(NewPicker(scan)).Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(PickerModel)
	if !ok {
		return nil, nil
	}
	if m.Err() != nil {
		return nil, m.Err()
	}
	return m.Selection(), nil
}
