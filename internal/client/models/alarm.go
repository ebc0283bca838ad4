package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dentinhoapp/dentinho/internal/common"
)

// scheduleLayout is the fixed display pattern for alarm schedules:
// day/month/year, 24-hour clock, pt-BR connector. It is both the rendering
// format and the parse pattern, regardless of device locale.
const scheduleLayout = "02/01/2006 às 15:04"

// AlarmRecord is one reminder entry. ID is a timestamp-derived decimal
// token; Horario is the display string produced by FormatSchedule.
type AlarmRecord struct {
	ID      string `json:"id"`
	Horario string `json:"horario"`
}

// FormatSchedule renders t as the alarm display string, e.g.
// "09/05/2025 às 22:07". Precision is minutes.
func FormatSchedule(t time.Time) string {
	return t.Format(scheduleLayout)
}

// ParseSchedule is the inverse of FormatSchedule. It fails on anything that
// does not match the fixed pattern; callers treat that as "not editable"
// and abort the edit.
func ParseSchedule(s string) (time.Time, error) {
	t, err := time.Parse(scheduleLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized schedule %q: %w", s, err)
	}
	return t, nil
}

// EncodeAlarms serializes the full alarm list to its store value.
func EncodeAlarms(alarms []AlarmRecord) (string, error) {
	b, err := json.Marshal(alarms)
	if err != nil {
		return "", fmt.Errorf("failed to encode alarm list: %w", err)
	}
	return string(b), nil
}

// DecodeAlarms parses the store value holding the alarm list. A malformed
// value yields common.ErrCorruptRecord; the alarm manager recovers from
// that by treating the list as empty.
func DecodeAlarms(value string) ([]AlarmRecord, error) {
	var alarms []AlarmRecord
	if err := json.Unmarshal([]byte(value), &alarms); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCorruptRecord, err)
	}
	return alarms, nil
}
