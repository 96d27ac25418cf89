// Package tui es la pantalla principal en terminal: próxima toma y
// cronograma del día agrupado por hora.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"med-schedule/internal/domain/medicines"
	"med-schedule/internal/domain/schedule"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const upcomingShown = 2

// Backend lo cumplen *medicines.Service (en proceso) y remote.Client (API).
type Backend interface {
	List(ctx context.Context) ([]medicines.Medicine, error)
	UpdateSlotStatus(ctx context.Context, slotTime string, status medicines.Status) ([]medicines.Medicine, error)
	Capture(ctx context.Context, source string) (medicines.Medicine, error)
}

// Options parametriza la pantalla. Las variantes (cámara / web) solo
// cambian el título y la plantilla de captura.
type Options struct {
	Title         string
	CaptureSource string
	Timeout       time.Duration
	Now           func() time.Time
}

type Model struct {
	backend Backend
	opts    Options

	keys keyMap
	help help.Model

	slots    []schedule.TimeSlot
	upcoming []medicines.Medicine

	cursor      int
	showOptions map[string]bool // por hora de slot; solo UI

	loaded bool
	status string
	err    error
}

type loadedMsg struct {
	items []medicines.Medicine
}

type actionMsg struct {
	text string
}

type errMsg struct {
	err error
}

func New(backend Backend, opts Options) Model {
	if strings.TrimSpace(opts.Title) == "" {
		opts.Title = "MedSchedule"
	}
	if strings.TrimSpace(opts.CaptureSource) == "" {
		opts.CaptureSource = medicines.SourceCamera
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return Model{
		backend:     backend,
		opts:        opts,
		keys:        defaultKeyMap(),
		help:        help.New(),
		showOptions: map[string]bool{},
	}
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case loadedMsg:
		m.loaded = true
		m.err = nil
		m.slots = schedule.GroupByTime(msg.items)
		m.upcoming = schedule.Upcoming(msg.items, upcomingShown)
		if m.cursor >= len(m.slots) {
			m.cursor = max(len(m.slots)-1, 0)
		}
		return m, nil

	case actionMsg:
		m.status = msg.text
		return m, m.load()

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.slots)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if slot, ok := m.selected(); ok {
			m.showOptions[slot.Time] = !m.showOptions[slot.Time]
		}

	case key.Matches(msg, m.keys.Taken):
		if slot, ok := m.selected(); ok {
			return m, m.markSlot(slot.Time, medicines.StatusTaken)
		}

	case key.Matches(msg, m.keys.Missed):
		if slot, ok := m.selected(); ok {
			return m, m.markSlot(slot.Time, medicines.StatusMissed)
		}

	case key.Matches(msg, m.keys.Capture):
		return m, m.capture()

	case key.Matches(msg, m.keys.Reload):
		m.status = ""
		return m, m.load()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) selected() (schedule.TimeSlot, bool) {
	if m.cursor < 0 || m.cursor >= len(m.slots) {
		return schedule.TimeSlot{}, false
	}
	return m.slots[m.cursor], true
}

// -------------------------
// Commands
// -------------------------

func (m Model) load() tea.Cmd {
	backend, timeout := m.backend, m.opts.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		items, err := backend.List(ctx)
		if err != nil {
			return errMsg{err: fmt.Errorf("load medicines: %w", err)}
		}
		return loadedMsg{items: items}
	}
}

func (m Model) markSlot(slotTime string, status medicines.Status) tea.Cmd {
	backend, timeout := m.backend, m.opts.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		updated, err := backend.UpdateSlotStatus(ctx, slotTime, status)
		if err != nil {
			return errMsg{err: fmt.Errorf("mark %s as %s: %w", slotTime, status, err)}
		}
		return actionMsg{text: fmt.Sprintf("%s: %d marked as %s", slotTime, len(updated), status)}
	}
}

func (m Model) capture() tea.Cmd {
	backend, timeout, source := m.backend, m.opts.Timeout, m.opts.CaptureSource
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		med, err := backend.Capture(ctx, source)
		if err != nil {
			return errMsg{err: fmt.Errorf("capture: %w", err)}
		}
		return actionMsg{text: fmt.Sprintf("Added %s (%s) at %s", med.Name, med.Dosage, med.Time)}
	}
}

// -------------------------
// View
// -------------------------

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.opts.Title))
	b.WriteString("  ")
	b.WriteString(dateStyle.Render(m.opts.Now().Format("Monday, January 2")))
	b.WriteString("\n")

	if !m.loaded && m.err == nil {
		b.WriteString("\nLoading...\n")
		return b.String()
	}

	// sin pendientes no se muestra la sección
	if len(m.upcoming) > 0 {
		b.WriteString(sectionStyle.Render("Upcoming Dose"))
		b.WriteString("\n")
		lines := make([]string, 0, len(m.upcoming))
		for _, med := range m.upcoming {
			lines = append(lines, fmt.Sprintf("%s  %s  %s", timeStyle.Render(med.Time), med.Name, pillStyle.Render(med.Dosage)))
		}
		b.WriteString(upcomingStyle.Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Today's Schedule"))
	b.WriteString("\n")
	if len(m.slots) == 0 {
		b.WriteString("  No medicines scheduled.\n")
	}
	for i, slot := range m.slots {
		b.WriteString(m.slotView(i, slot))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) slotView(i int, slot schedule.TimeSlot) string {
	var b strings.Builder

	cursor := "  "
	if i == m.cursor {
		cursor = cursorStyle.Render("> ")
	}

	b.WriteString(cursor)
	b.WriteString(timeStyle.Render(slot.Time))
	b.WriteString("  ")
	b.WriteString(slot.Title)
	switch {
	case slot.Completed:
		b.WriteString("  " + takenStyle.Render("Taken ✓"))
	case slot.Missed:
		b.WriteString("  " + missedStyle.Render("Missed ✗"))
	}
	b.WriteString("\n")

	pills := make([]string, 0, len(slot.Medicines))
	for _, med := range slot.Medicines {
		pills = append(pills, fmt.Sprintf("%s %s", med.Name, med.Dosage))
	}
	b.WriteString("    " + pillStyle.Render(strings.Join(pills, " · ")) + "\n")

	if m.showOptions[slot.Time] {
		b.WriteString("    " + optionStyle.Render("[t] Mark as Taken   [m] Mark as Missed") + "\n")
	}
	return b.String()
}
