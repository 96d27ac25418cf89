package clock

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock_KnownValues(t *testing.T) {
	cases := map[string]int{
		"12:00 AM": 0,
		"12:30 AM": 30,
		"9:00 AM":  540,
		"11:59 AM": 719,
		"12:00 PM": 720,
		"1:00 PM":  780,
		"8:00 PM":  1200,
		"11:59 PM": 1439,
		" 8:00 pm": 1200,
	}
	for in, want := range cases {
		got, err := ParseClock(in)
		require.NoError(t, err, "ParseClock(%q)", in)
		assert.Equal(t, want, got, "ParseClock(%q)", in)
	}
}

func TestParseClock_Monotonic(t *testing.T) {
	ordered := []string{"12:00 AM", "1:15 AM", "9:00 AM", "11:45 AM", "12:00 PM", "12:01 PM", "1:00 PM", "8:00 PM", "11:59 PM"}
	prev := -1
	for _, s := range ordered {
		m, err := ParseClock(s)
		require.NoError(t, err)
		assert.Greater(t, m, prev, "%s should be after previous", s)
		prev = m
	}
}

func TestParseClock_Malformed(t *testing.T) {
	for _, in := range []string{"", "8:00", "20:00", "13:00 PM", "8 AM", "noon", "8:60 AM"} {
		_, err := ParseClock(in)
		assert.True(t, errors.Is(err, ErrMalformed), "ParseClock(%q) err=%v", in, err)
		assert.False(t, Valid(in))
		assert.Equal(t, Invalid, Minutes(in))
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	for _, s := range []string{"12:00 AM", "9:00 AM", "12:00 PM", "1:05 PM", "8:00 PM"} {
		m, err := ParseClock(s)
		require.NoError(t, err)
		assert.Equal(t, s, Format(m))
	}
	assert.Equal(t, "12:00 AM", Format(1440))
}
