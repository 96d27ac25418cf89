package medicines

import (
	"context"
	"errors"
	"strings"
	"time"

	"med-schedule/internal/domain/schedule/clock"
	"med-schedule/internal/middleware"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Fuentes de un cambio de estado / alta.
const (
	SourceManual = "manual"
	SourceSlot   = "slot"
	SourceCamera = "camera"
	SourceWeb    = "web"
	SourceSeed   = "seed"
)

type Service struct {
	repo      Repository
	recorders []ChangeRecorder
	now       func() time.Time
}

func NewService(repo Repository, recorders ...ChangeRecorder) *Service {
	return &Service{
		repo:      repo,
		recorders: recorders,
		now:       time.Now,
	}
}

type CreateInput struct {
	ID       string // opcional; seed lo usa para ids estables
	Name     string
	Dosage   string
	Schedule Schedule
	Time     string
	Status   Status // vacío => pending
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Medicine, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Medicine{}, ErrInvalidInput
	}
	minutes, err := clock.ParseClock(in.Time)
	if err != nil {
		return Medicine{}, ErrInvalidInput
	}
	// forma canónica: "09:00 am" y "9:00 AM" caen en el mismo slot
	t := clock.Format(minutes)

	st := in.Status
	if st == "" {
		st = StatusPending
	}
	if !st.Valid() {
		return Medicine{}, ErrInvalidInput
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	}

	now := s.now()
	m := Medicine{
		ID:        id,
		Name:      strings.TrimSpace(in.Name),
		Dosage:    strings.TrimSpace(in.Dosage),
		Schedule:  Schedule(strings.TrimSpace(string(in.Schedule))),
		Time:      t,
		Status:    st,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Medicine{}, err
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Medicine, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medicine{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Medicine, error) {
	return s.repo.List(ctx)
}

// UpdateStatus sobrescribe el estado sin validar la transición.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status, source string) (Medicine, error) {
	id = strings.TrimSpace(id)
	if id == "" || !status.Valid() {
		return Medicine{}, ErrInvalidInput
	}

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Medicine{}, err
	}
	return s.overwrite(ctx, m, status, source)
}

// UpdateSlotStatus aplica el estado a todos los registros con la misma hora.
func (s *Service) UpdateSlotStatus(ctx context.Context, slotTime string, status Status) ([]Medicine, error) {
	slotTime = strings.TrimSpace(slotTime)
	if slotTime == "" || !status.Valid() {
		return nil, ErrInvalidInput
	}
	if minutes, err := clock.ParseClock(slotTime); err == nil {
		slotTime = clock.Format(minutes)
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Medicine, 0)
	for _, m := range items {
		if m.Time != slotTime {
			continue
		}
		updated, err := s.overwrite(ctx, m, status, SourceSlot)
		if err != nil {
			return nil, err
		}
		out = append(out, updated)
	}

	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

// Capture fabrica el registro fijo que la app agregaba al "escanear" una receta.
// No hay OCR: source solo elige la plantilla.
func (s *Service) Capture(ctx context.Context, source string) (Medicine, error) {
	key := CaptureSource(source)
	in := captureTemplates[key]
	in.Time = DefaultTime(in.Schedule)

	m, err := s.Create(ctx, in)
	if err != nil {
		return Medicine{}, err
	}

	for _, r := range s.recorders {
		if c, ok := r.(CaptureRecorder); ok {
			c.RecordCapture(ctx, m, key)
		}
	}
	return m, nil
}

// CaptureRecorder es opcional para los ChangeRecorder que cuentan capturas.
type CaptureRecorder interface {
	RecordCapture(ctx context.Context, m Medicine, source string)
}

// CaptureSource normaliza el origen a una plantilla conocida (camera si no).
func CaptureSource(source string) string {
	key := strings.ToLower(strings.TrimSpace(source))
	if _, ok := captureTemplates[key]; !ok {
		return SourceCamera
	}
	return key
}

var captureTemplates = map[string]CreateInput{
	SourceCamera: {Name: "New Prescription", Dosage: "50mg", Schedule: ScheduleMorning},
	SourceWeb:    {Name: "Web Test Medicine", Dosage: "100mg", Schedule: ScheduleEvening},
}

// DefaultTime es la hora del cronograma diario para cada etiqueta.
func DefaultTime(sc Schedule) string {
	switch sc {
	case ScheduleAfternoon:
		return "2:00 PM"
	case ScheduleEvening:
		return "8:00 PM"
	default:
		return "8:00 AM"
	}
}

func (s *Service) overwrite(ctx context.Context, m Medicine, status Status, source string) (Medicine, error) {
	from := m.Status
	now := s.now()

	m.Status = status
	m.UpdatedAt = now
	if err := s.repo.Update(ctx, m); err != nil {
		return Medicine{}, err
	}

	if strings.TrimSpace(source) == "" {
		source = SourceManual
	}
	change := StatusChange{Medicine: m, From: from, To: status, Source: source, At: now}
	for _, r := range s.recorders {
		// best-effort: el historial no bloquea la sobrescritura
		if err := r.Record(ctx, change); err != nil {
			middleware.GetLogger(ctx).Warn("status change not recorded", map[string]any{
				"medicine_id": m.ID,
				"status":      string(status),
				"err":         err,
			})
		}
	}
	return m, nil
}
