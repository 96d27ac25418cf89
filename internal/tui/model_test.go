package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"med-schedule/internal/domain/medicines"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	items    []medicines.Medicine
	captured []string
	listErr  error
}

func (f *fakeBackend) List(ctx context.Context) ([]medicines.Medicine, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]medicines.Medicine, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeBackend) UpdateSlotStatus(ctx context.Context, slotTime string, status medicines.Status) ([]medicines.Medicine, error) {
	out := make([]medicines.Medicine, 0)
	for i := range f.items {
		if f.items[i].Time == slotTime {
			f.items[i].Status = status
			out = append(out, f.items[i])
		}
	}
	if len(out) == 0 {
		return nil, medicines.ErrNotFound
	}
	return out, nil
}

func (f *fakeBackend) Capture(ctx context.Context, source string) (medicines.Medicine, error) {
	f.captured = append(f.captured, source)
	m := medicines.Medicine{ID: "new", Name: "New Prescription", Dosage: "50mg", Time: "8:00 AM", Status: medicines.StatusPending}
	f.items = append(f.items, m)
	return m, nil
}

func newFake() *fakeBackend {
	return &fakeBackend{items: []medicines.Medicine{
		{ID: "1", Name: "Metformin", Dosage: "500mg", Schedule: medicines.ScheduleMorning, Time: "8:00 AM", Status: medicines.StatusTaken},
		{ID: "3", Name: "Lisinopril", Dosage: "10mg", Schedule: medicines.ScheduleMorning, Time: "9:00 AM", Status: medicines.StatusPending},
		{ID: "5", Name: "Metformin", Dosage: "500mg", Schedule: medicines.ScheduleAfternoon, Time: "1:00 PM", Status: medicines.StatusPending},
		{ID: "6", Name: "Amlodipine", Dosage: "5mg", Schedule: medicines.ScheduleEvening, Time: "8:00 PM", Status: medicines.StatusPending},
	}}
}

func newTestModel(b Backend) Model {
	return New(b, Options{
		Title: "MedSchedule",
		Now:   func() time.Time { return time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC) },
	})
}

// run ejecuta cmd y retroalimenta los mensajes hasta que no quede ninguno.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for i := 0; cmd != nil && i < 10; i++ {
		msg := cmd()
		if msg == nil {
			break
		}
		next, c := m.Update(msg)
		m = next.(Model)
		cmd = c
	}
	return m
}

func press(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(k)
	return run(t, next.(Model), cmd)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_InitialLoad(t *testing.T) {
	m := newTestModel(newFake())
	assert.Contains(t, m.View(), "Loading")

	m = run(t, m, m.Init())
	require.Len(t, m.slots, 4)
	require.Len(t, m.upcoming, 2)
	assert.Equal(t, "3", m.upcoming[0].ID)
	assert.Equal(t, "5", m.upcoming[1].ID)

	v := m.View()
	assert.Contains(t, v, "MedSchedule")
	assert.Contains(t, v, "Monday, March 2")
	assert.Contains(t, v, "Upcoming Dose")
	assert.Contains(t, v, "Today's Schedule")
	assert.Contains(t, v, "Taken ✓")
	assert.Less(t, strings.Index(v, "8:00 AM"), strings.Index(v, "8:00 PM"))
}

func TestModel_UpcomingHiddenWhenNothingPending(t *testing.T) {
	f := newFake()
	for i := range f.items {
		f.items[i].Status = medicines.StatusTaken
	}
	m := newTestModel(f)
	m = run(t, m, m.Init())

	assert.Empty(t, m.upcoming)
	assert.NotContains(t, m.View(), "Upcoming Dose")
	assert.Contains(t, m.View(), "Today's Schedule")
}

func TestModel_NavigateAndToggleOptions(t *testing.T) {
	m := newTestModel(newFake())
	m = run(t, m, m.Init())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.showOptions["9:00 AM"])
	assert.Contains(t, m.View(), "Mark as Taken")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.showOptions["9:00 AM"])
	assert.NotContains(t, m.View(), "Mark as Taken")

	for i := 0; i < 10; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 3, m.cursor)
}

func TestModel_MarkSlotTakenAndMissed(t *testing.T) {
	f := newFake()
	m := newTestModel(f)
	m = run(t, m, m.Init())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, runes("t"))
	require.NoError(t, m.err)
	assert.True(t, m.slots[1].Completed)
	assert.Contains(t, m.status, "9:00 AM")
	assert.Equal(t, "5", m.upcoming[0].ID)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, runes("m"))
	assert.True(t, m.slots[3].Missed)
	assert.Contains(t, m.View(), "Missed ✗")
}

func TestModel_Capture(t *testing.T) {
	f := newFake()
	m := New(f, Options{CaptureSource: medicines.SourceWeb})
	m = run(t, m, m.Init())

	m = press(t, m, runes("c"))
	assert.Equal(t, []string{medicines.SourceWeb}, f.captured)
	assert.Contains(t, m.status, "New Prescription")
	assert.Len(t, m.slots[0].Medicines, 2)
	assert.False(t, m.slots[0].Completed)
}

func TestModel_LoadError(t *testing.T) {
	f := newFake()
	f.listErr = errors.New("connection refused")
	m := newTestModel(f)
	m = run(t, m, m.Init())

	require.Error(t, m.err)
	assert.Contains(t, m.View(), "connection refused")
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(newFake())
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
