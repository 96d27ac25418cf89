package schedule

import (
	"sort"

	"med-schedule/internal/domain/medicines"
	"med-schedule/internal/domain/schedule/clock"
)

// TimeSlot agrupa los registros que comparten exactamente la misma hora.
// Se recalcula en cada lectura; nunca se persiste.
type TimeSlot struct {
	Time      string
	Title     string
	Medicines []medicines.Medicine

	Completed bool // todos taken
	Missed    bool // todos missed
}

// GroupByTime arma un slot por hora distinta, miembros en orden de entrada,
// slots ascendentes por hora del día (orden estable).
func GroupByTime(items []medicines.Medicine) []TimeSlot {
	index := map[string]int{}
	slots := make([]TimeSlot, 0)

	for _, m := range items {
		i, ok := index[m.Time]
		if !ok {
			i = len(slots)
			index[m.Time] = i
			slots = append(slots, TimeSlot{Time: m.Time, Title: slotTitle(m)})
		}
		slots[i].Medicines = append(slots[i].Medicines, m)
	}

	for i := range slots {
		slots[i].Completed = allWithStatus(slots[i].Medicines, medicines.StatusTaken)
		slots[i].Missed = allWithStatus(slots[i].Medicines, medicines.StatusMissed)
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return clock.Minutes(slots[i].Time) < clock.Minutes(slots[j].Time)
	})
	return slots
}

// FindSlot devuelve el slot con esa hora exacta.
func FindSlot(slots []TimeSlot, t string) (TimeSlot, bool) {
	for _, s := range slots {
		if s.Time == t {
			return s, true
		}
	}
	return TimeSlot{}, false
}

func allWithStatus(items []medicines.Medicine, st medicines.Status) bool {
	if len(items) == 0 {
		return false
	}
	for _, m := range items {
		if m.Status != st {
			return false
		}
	}
	return true
}

func slotTitle(m medicines.Medicine) string {
	if m.Schedule == "" {
		return "Medications"
	}
	return string(m.Schedule) + " Medications"
}
