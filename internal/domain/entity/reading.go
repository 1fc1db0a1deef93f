package entity

import (
	"maps"
	"slices"
	"time"
)

// DayLayout is the calendar-day format used for partitioning and exports.
const DayLayout = "2006-01-02"

// Payload maps a metric name to its numeric value. Devices may report
// different metric sets, so it is data rather than schema.
type Payload map[string]float64

// MetricNames returns the payload keys in lexicographic order.
func (p Payload) MetricNames() []string {
	return slices.Sorted(maps.Keys(p))
}

// Reading is one accepted sensor sample. It is immutable once stored.
// ID is the store's global row identity; SequenceID counts the device's
// accepted readings from 1 without gaps.
type Reading struct {
	ID         uint64    `json:"id"`
	SequenceID uint64    `json:"sequence_id"`
	DeviceID   string    `json:"device_id"`
	Timestamp  time.Time `json:"timestamp"` // Caller supplied, always UTC.
	Payload    Payload   `json:"payload"`
}

// Day returns the UTC calendar day the reading belongs to.
func (r *Reading) Day() string {
	return r.Timestamp.UTC().Format(DayLayout)
}

// DayStart truncates t to the start of its UTC calendar day.
func DayStart(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string as a UTC calendar day.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, s, time.UTC)
}
