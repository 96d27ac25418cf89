package medicines

import (
	"context"
	"errors"
	"testing"
	"time"

	"med-schedule/internal/middleware"
	"med-schedule/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID  map[string]Medicine
	order []string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Medicine{}}
}

func (r *testRepo) Create(ctx context.Context, m Medicine) error {
	if _, ok := r.byID[m.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[m.ID] = m
	r.order = append(r.order, m.ID)
	return nil
}

func (r *testRepo) Update(ctx context.Context, m Medicine) error {
	if _, ok := r.byID[m.ID]; !ok {
		return ErrNotFound
	}
	r.byID[m.ID] = m
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Medicine, error) {
	m, ok := r.byID[id]
	if !ok {
		return Medicine{}, ErrNotFound
	}
	return m, nil
}

func (r *testRepo) List(ctx context.Context) ([]Medicine, error) {
	out := make([]Medicine, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

type spyRecorder struct {
	changes  []StatusChange
	captures []string
}

func (s *spyRecorder) Record(ctx context.Context, c StatusChange) error {
	s.changes = append(s.changes, c)
	return nil
}

func (s *spyRecorder) RecordCapture(ctx context.Context, m Medicine, source string) {
	s.captures = append(s.captures, source)
}

type failingRecorder struct{}

func (failingRecorder) Record(ctx context.Context, c StatusChange) error {
	return errors.New("recorder down")
}

func newTestService(recorders ...ChangeRecorder) (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo, recorders...)
	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	return svc, repo
}

// -------------------------
// Tests
// -------------------------

func TestCreate_DefaultsToPending(t *testing.T) {
	svc, _ := newTestService()

	m, err := svc.Create(context.Background(), CreateInput{
		Name:     "  Lisinopril ",
		Dosage:   "10mg • 1 pill",
		Schedule: ScheduleMorning,
		Time:     "9:00 AM",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "Lisinopril", m.Name)
	assert.Equal(t, StatusPending, m.Status)
	assert.Equal(t, m.CreatedAt, m.UpdatedAt)
}

func TestCreate_KeepsGivenID(t *testing.T) {
	svc, repo := newTestService()

	m, err := svc.Create(context.Background(), CreateInput{ID: "7", Name: "Amlodipine", Time: "8:00 PM", Status: StatusTaken})
	require.NoError(t, err)
	assert.Equal(t, "7", m.ID)
	assert.Equal(t, StatusTaken, repo.byID["7"].Status)
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cases := map[string]CreateInput{
		"empty name":     {Name: " ", Time: "9:00 AM"},
		"malformed time": {Name: "Aspirin", Time: "21:00"},
		"empty time":     {Name: "Aspirin"},
		"unknown status": {Name: "Aspirin", Time: "9:00 AM", Status: "skipped"},
	}
	for name, in := range cases {
		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidInput, name)
	}
}

func TestUpdateStatus_AnyTransitionAllowed(t *testing.T) {
	spy := &spyRecorder{}
	svc, _ := newTestService(spy)
	ctx := context.Background()

	m, err := svc.Create(ctx, CreateInput{Name: "Metformin", Time: "1:00 PM"})
	require.NoError(t, err)

	path := []Status{StatusTaken, StatusPending, StatusMissed, StatusCompleted, StatusPending}
	for _, st := range path {
		got, err := svc.UpdateStatus(ctx, m.ID, st, "")
		require.NoError(t, err)
		assert.Equal(t, st, got.Status)
	}

	require.Len(t, spy.changes, len(path))
	first := spy.changes[0]
	assert.Equal(t, StatusPending, first.From)
	assert.Equal(t, StatusTaken, first.To)
	assert.Equal(t, SourceManual, first.Source)
	assert.Equal(t, m.ID, first.Medicine.ID)
}

func TestUpdateStatus_Errors(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, "missing", StatusTaken, SourceManual)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateStatus(ctx, "", StatusTaken, SourceManual)
	assert.ErrorIs(t, err, ErrInvalidInput)

	m, err := svc.Create(ctx, CreateInput{Name: "Aspirin", Time: "8:00 AM"})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, m.ID, "skipped", SourceManual)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_RecorderFailureDoesNotBlock(t *testing.T) {
	svc, repo := newTestService(failingRecorder{})
	core, logs := observer.New(zapcore.WarnLevel)
	ctx := middleware.WithLogger(context.Background(), logger.FromZap(zap.New(core)))

	m, err := svc.Create(ctx, CreateInput{Name: "Aspirin", Time: "8:00 AM"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, m.ID, StatusTaken, SourceManual)
	require.NoError(t, err)
	assert.Equal(t, StatusTaken, repo.byID[m.ID].Status)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, m.ID, entry.ContextMap()["medicine_id"])
	assert.Equal(t, "recorder down", entry.ContextMap()["err"])
}

func TestUpdateSlotStatus(t *testing.T) {
	spy := &spyRecorder{}
	svc, repo := newTestService(spy)
	ctx := context.Background()

	for _, in := range []CreateInput{
		{ID: "a", Name: "Lisinopril", Time: "9:00 AM"},
		{ID: "b", Name: "Metformin", Time: "1:00 PM"},
		{ID: "c", Name: "Vitamin D3", Time: "9:00 AM"},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	updated, err := svc.UpdateSlotStatus(ctx, "9:00 AM", StatusTaken)
	require.NoError(t, err)
	require.Len(t, updated, 2)
	assert.Equal(t, "a", updated[0].ID)
	assert.Equal(t, "c", updated[1].ID)

	assert.Equal(t, StatusTaken, repo.byID["a"].Status)
	assert.Equal(t, StatusTaken, repo.byID["c"].Status)
	assert.Equal(t, StatusPending, repo.byID["b"].Status)

	require.Len(t, spy.changes, 2)
	assert.Equal(t, SourceSlot, spy.changes[0].Source)

	_, err = svc.UpdateSlotStatus(ctx, "3:00 AM", StatusTaken)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateSlotStatus(ctx, "9:00 AM", "nope")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCapture_Templates(t *testing.T) {
	spy := &spyRecorder{}
	svc, repo := newTestService(spy)
	ctx := context.Background()

	cam, err := svc.Capture(ctx, SourceCamera)
	require.NoError(t, err)
	assert.Equal(t, "New Prescription", cam.Name)
	assert.Equal(t, "50mg", cam.Dosage)
	assert.Equal(t, ScheduleMorning, cam.Schedule)
	assert.Equal(t, "8:00 AM", cam.Time)
	assert.Equal(t, StatusPending, cam.Status)

	web, err := svc.Capture(ctx, "WEB")
	require.NoError(t, err)
	assert.Equal(t, "Web Test Medicine", web.Name)
	assert.Equal(t, "100mg", web.Dosage)
	assert.Equal(t, ScheduleEvening, web.Schedule)
	assert.Equal(t, "8:00 PM", web.Time)

	other, err := svc.Capture(ctx, "fax")
	require.NoError(t, err)
	assert.Equal(t, "New Prescription", other.Name)

	assert.Len(t, repo.order, 3)
	assert.Equal(t, []string{SourceCamera, SourceWeb, SourceCamera}, spy.captures)
}

func TestDefaultTime(t *testing.T) {
	assert.Equal(t, "8:00 AM", DefaultTime(ScheduleMorning))
	assert.Equal(t, "2:00 PM", DefaultTime(ScheduleAfternoon))
	assert.Equal(t, "8:00 PM", DefaultTime(ScheduleEvening))
	assert.Equal(t, "8:00 AM", DefaultTime(""))
}

func TestCreate_NormalizesTime(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, in := range []string{"9:00 AM", "9:00 am", "09:00 AM", " 9:00  AM "} {
		m, err := svc.Create(ctx, CreateInput{Name: "Lisinopril", Time: in})
		require.NoError(t, err, in)
		assert.Equal(t, "9:00 AM", m.Time, in)
	}
}

func TestUpdateSlotStatus_NormalizesSlotTime(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{ID: "a", Name: "Lisinopril", Time: "09:00 am"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateInput{ID: "b", Name: "Vitamin D3", Time: "9:00 AM"})
	require.NoError(t, err)

	updated, err := svc.UpdateSlotStatus(ctx, "09:00 AM", StatusTaken)
	require.NoError(t, err)
	assert.Len(t, updated, 2)
	assert.Equal(t, StatusTaken, repo.byID["a"].Status)
	assert.Equal(t, StatusTaken, repo.byID["b"].Status)
}

func TestCaptureSource(t *testing.T) {
	assert.Equal(t, SourceCamera, CaptureSource("CAMERA"))
	assert.Equal(t, SourceWeb, CaptureSource(" Web "))
	assert.Equal(t, SourceCamera, CaptureSource("xyz-1"))
	assert.Equal(t, SourceCamera, CaptureSource(""))
}
