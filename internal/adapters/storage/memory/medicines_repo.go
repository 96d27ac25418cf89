package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"med-schedule/internal/domain/medicines"
)

// medicineRepo es la lista en memoria del proceso. Se descarta al salir.
type medicineRepo struct {
	mu    sync.RWMutex
	byID  map[string]medicines.Medicine
	order []string // orden de inserción
}

func NewMedicineRepo() medicines.Repository {
	return &medicineRepo{
		byID: make(map[string]medicines.Medicine),
	}
}

func (r *medicineRepo) Create(ctx context.Context, m medicines.Medicine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("medicine id required")
	}
	if _, exists := r.byID[m.ID]; exists {
		return fmt.Errorf("medicine %s already exists: %w", m.ID, medicines.ErrInvalidInput)
	}
	r.byID[m.ID] = m
	r.order = append(r.order, m.ID)
	return nil
}

func (r *medicineRepo) Update(ctx context.Context, m medicines.Medicine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("medicine id required")
	}
	if _, exists := r.byID[m.ID]; !exists {
		return fmt.Errorf("medicine %s: %w", m.ID, medicines.ErrNotFound)
	}
	r.byID[m.ID] = m
	return nil
}

func (r *medicineRepo) GetByID(ctx context.Context, id string) (medicines.Medicine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return medicines.Medicine{}, fmt.Errorf("medicine %s: %w", id, medicines.ErrNotFound)
	}
	return m, nil
}

func (r *medicineRepo) List(ctx context.Context) ([]medicines.Medicine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medicines.Medicine, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
