package schedule

import (
	"sort"

	"med-schedule/internal/domain/medicines"
	"med-schedule/internal/domain/schedule/clock"
)

// NextDoses devuelve solo los pending, ascendentes por hora.
// Vacío es un estado válido: quien presenta debe ocultar "Upcoming Dose".
func NextDoses(items []medicines.Medicine) []medicines.Medicine {
	out := make([]medicines.Medicine, 0)
	for _, m := range items {
		if m.Status == medicines.StatusPending {
			out = append(out, m)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return clock.Minutes(out[i].Time) < clock.Minutes(out[j].Time)
	})
	return out
}

// Upcoming recorta NextDoses a los primeros n (n <= 0 => todos).
func Upcoming(items []medicines.Medicine, n int) []medicines.Medicine {
	out := NextDoses(items)
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
