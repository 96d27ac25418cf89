package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"med-schedule/internal/domain/doselog"
)

type doseLogRepo struct {
	mu      sync.RWMutex
	entries []doselog.Entry
}

func NewDoseLogRepo() doselog.Repository {
	return &doseLogRepo{
		entries: make([]doselog.Entry, 0),
	}
}

func (r *doseLogRepo) Append(ctx context.Context, e doselog.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("entry id required")
	}
	r.entries = append(r.entries, e)
	return nil
}

func (r *doseLogRepo) List(ctx context.Context, filter doselog.ListFilter) ([]doselog.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = doselog.DefaultLimit
	}

	out := make([]doselog.Entry, 0)

	for _, e := range r.entries {
		if filter.MedicineID != "" && e.MedicineID != filter.MedicineID {
			continue
		}

		if len(filter.Statuses) > 0 {
			ok := false
			for _, st := range filter.Statuses {
				if e.To == st {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}
		}

		if filter.From != nil {
			if e.OccurredAt.Before((*filter.From).Add(-1 * time.Nanosecond)) {
				continue
			}
		}
		if filter.To != nil {
			if e.OccurredAt.After(*filter.To) {
				continue
			}
		}

		if q := strings.TrimSpace(filter.Query); q != "" {
			if !strings.Contains(strings.ToLower(e.MedicineName), strings.ToLower(q)) {
				continue
			}
		}

		out = append(out, e)
	}

	// Más reciente primero; en empate, el último agregado primero
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
