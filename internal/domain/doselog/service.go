package doselog

import (
	"context"
	"errors"
	"strings"
	"time"

	"med-schedule/internal/domain/medicines"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Record implementa medicines.ChangeRecorder.
func (s *Service) Record(ctx context.Context, c medicines.StatusChange) error {
	if strings.TrimSpace(c.Medicine.ID) == "" || c.To == "" {
		return ErrInvalidInput
	}

	at := c.At
	if at.IsZero() {
		at = s.now()
	}

	return s.repo.Append(ctx, Entry{
		ID:           uuid.NewString(),
		MedicineID:   c.Medicine.ID,
		MedicineName: c.Medicine.Name,
		Time:         c.Medicine.Time,
		From:         c.From,
		To:           c.To,
		Source:       c.Source,
		OccurredAt:   at,
	})
}

// List devuelve el historial más reciente primero.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Entry, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, ErrInvalidInput
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) ListByMedicine(ctx context.Context, medicineID string, filter ListFilter) ([]Entry, error) {
	medicineID = strings.TrimSpace(medicineID)
	if medicineID == "" {
		return nil, ErrInvalidInput
	}
	filter.MedicineID = medicineID
	return s.List(ctx, filter)
}
