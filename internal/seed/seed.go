// Package seed carga la lista mock inicial de tomas.
package seed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"med-schedule/internal/domain/medicines"
	"med-schedule/internal/platform/logger"

	"gopkg.in/yaml.v3"
)

// Record es una entrada del archivo de seed.
type Record struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Dosage   string `yaml:"dosage"`
	Schedule string `yaml:"schedule"`
	Time     string `yaml:"time"`
	Status   string `yaml:"status"`
}

type file struct {
	Medicines []Record `yaml:"medicines"`
}

// Defaults es el día de ejemplo de la pantalla principal.
func Defaults() []Record {
	return []Record{
		{ID: "1", Name: "Metformin", Dosage: "500mg • 1 tablet", Schedule: "Morning", Time: "8:00 AM", Status: "taken"},
		{ID: "2", Name: "Aspirin", Dosage: "81mg • 1 tablet", Schedule: "Morning", Time: "8:00 AM", Status: "taken"},
		{ID: "3", Name: "Lisinopril", Dosage: "10mg • 1 pill", Schedule: "Morning", Time: "9:00 AM", Status: "pending"},
		{ID: "4", Name: "Vitamin D3", Dosage: "1000IU • 1 capsule", Schedule: "Morning", Time: "9:00 AM", Status: "pending"},
		{ID: "5", Name: "Metformin", Dosage: "500mg • 1 tablet", Schedule: "Afternoon", Time: "1:00 PM", Status: "pending"},
		{ID: "6", Name: "Metformin", Dosage: "500mg • 1 tablet", Schedule: "Evening", Time: "8:00 PM", Status: "pending"},
		{ID: "7", Name: "Amlodipine", Dosage: "5mg • 1 tablet", Schedule: "Evening", Time: "8:00 PM", Status: "pending"},
		{ID: "8", Name: "Vitamin C", Dosage: "500mg • 1 tablet", Schedule: "Evening", Time: "8:00 PM", Status: "pending"},
	}
}

// ReadFile parsea un YAML con la forma:
//
//	medicines:
//	  - name: Aspirin
//	    dosage: 81mg
//	    schedule: Morning
//	    time: "8:00 AM"
func ReadFile(path string) ([]Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return f.Medicines, nil
}

// Load crea los registros en el servicio. Se llama una sola vez al arrancar.
// Un registro inválido corta la carga.
func Load(ctx context.Context, svc *medicines.Service, records []Record, log logger.Logger) (int, error) {
	if log == nil {
		log = logger.Nop()
	}

	n := 0
	for i, rec := range records {
		_, err := svc.Create(ctx, medicines.CreateInput{
			ID:       rec.ID,
			Name:     rec.Name,
			Dosage:   rec.Dosage,
			Schedule: medicines.Schedule(rec.Schedule),
			Time:     rec.Time,
			Status:   medicines.Status(strings.ToLower(strings.TrimSpace(rec.Status))),
		})
		if err != nil {
			return n, fmt.Errorf("seed record %d (%s): %w", i, rec.Name, err)
		}
		n++
	}

	log.Info("seeded medicines", map[string]any{"count": n})
	return n, nil
}

// FromFileOrDefaults decide la fuente según la config.
func FromFileOrDefaults(path string) ([]Record, error) {
	if strings.TrimSpace(path) == "" {
		return Defaults(), nil
	}
	return ReadFile(path)
}
