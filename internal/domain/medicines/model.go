package medicines

import "time"

// Status es el estado de una toma. Las transiciones no están restringidas:
// cualquier estado puede pasar a cualquier otro.
// @Enum pending, taken, missed, completed
type Status string

const (
	StatusPending   Status = "pending"
	StatusTaken     Status = "taken"
	StatusMissed    Status = "missed"
	StatusCompleted Status = "completed"
)

// Valid indica si el estado pertenece al conjunto fijo.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusTaken, StatusMissed, StatusCompleted:
		return true
	}
	return false
}

// Schedule es una etiqueta informativa (no participa en el orden).
type Schedule string

const (
	ScheduleMorning   Schedule = "Morning"
	ScheduleAfternoon Schedule = "Afternoon"
	ScheduleEvening   Schedule = "Evening"
)

// Medicine es una toma programada: nombre, dosis, hora ("H:MM AM|PM") y estado.
type Medicine struct {
	ID string

	Name     string
	Dosage   string // texto libre: "10mg • 1 pill"
	Schedule Schedule
	Time     string // "9:00 AM"

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StatusChange describe una sobrescritura de estado ya aplicada.
type StatusChange struct {
	Medicine Medicine
	From     Status
	To       Status
	Source   string
	At       time.Time
}
