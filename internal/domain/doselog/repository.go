package doselog

import (
	"context"
	"time"

	"med-schedule/internal/domain/medicines"
)

type Repository interface {
	Append(ctx context.Context, e Entry) error
	List(ctx context.Context, filter ListFilter) ([]Entry, error)
}

type ListFilter struct {
	MedicineID string // vacío => todos
	Statuses   []medicines.Status
	From       *time.Time
	To         *time.Time
	Query      string
	Limit      int
}
