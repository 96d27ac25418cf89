// Package clock convierte horas "H:MM AM|PM" a minutos desde medianoche.
package clock

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const layout = "3:04 PM"

var ErrMalformed = errors.New("time must be H:MM AM|PM")

// Invalid es el valor que usan los ordenamientos para horas que no parsean:
// quedan después de cualquier hora válida.
const Invalid = math.MaxInt

// ParseClock devuelve minutos desde medianoche.
// 12:00 AM => 0, 12:00 PM => 720.
func ParseClock(s string) (int, error) {
	v := strings.ToUpper(strings.Join(strings.Fields(s), " "))
	t, err := time.Parse(layout, v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Minutes es ParseClock para ordenar: si no parsea devuelve Invalid.
func Minutes(s string) int {
	m, err := ParseClock(s)
	if err != nil {
		return Invalid
	}
	return m
}

// Valid indica si s cumple el formato.
func Valid(s string) bool {
	_, err := ParseClock(s)
	return err == nil
}

// Format es la inversa de ParseClock (sin cero a la izquierda).
func Format(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440
	t := time.Date(2000, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return t.Format(layout)
}
