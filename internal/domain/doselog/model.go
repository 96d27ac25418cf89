package doselog

import (
	"time"

	"med-schedule/internal/domain/medicines"
)

// Entry es una sobrescritura de estado registrada. Solo se agrega; no se edita.
type Entry struct {
	ID         string
	MedicineID string

	MedicineName string
	Time         string // hora del registro al momento del cambio

	From medicines.Status
	To   medicines.Status

	Source     string
	OccurredAt time.Time
}
