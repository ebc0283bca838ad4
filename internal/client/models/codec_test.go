package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentinhoapp/dentinho/internal/common"
)

func TestUserRecord_EncodeDecodeRoundTrip(t *testing.T) {
	u := &UserRecord{Email: "ana@example.com", Username: "Ana", Password: "secret1"}

	value, err := EncodeUser(u)
	require.NoError(t, err)

	// store values keep the original app's field names
	assert.Contains(t, value, `"senha":"secret1"`)

	back, err := DecodeUser(value)
	require.NoError(t, err)
	require.Equal(t, u, back)
}

func TestDecodeUser_CorruptValue(t *testing.T) {
	_, err := DecodeUser(`{"email": "ana@`)
	require.ErrorIs(t, err, common.ErrCorruptRecord)
}

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "foo@bar.com", NormalizeEmail("  Foo@Bar.com "))
}

func TestUserKeys(t *testing.T) {
	require.Equal(t, "user:foo@bar.com", UserKey("Foo@Bar.com"))
	require.Equal(t, "user:foo@bar.com:image", UserImageKey("Foo@Bar.com"))
}

func TestFormatSchedule_ConcreteValue(t *testing.T) {
	dt := time.Date(2025, 5, 9, 22, 7, 0, 0, time.UTC)
	require.Equal(t, "09/05/2025 às 22:07", FormatSchedule(dt))
}

func TestParseSchedule_RoundTripLaw(t *testing.T) {
	for _, dt := range []time.Time{
		time.Date(2025, 5, 9, 22, 7, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		time.Date(1999, 12, 31, 23, 59, 0, 0, time.UTC),
	} {
		got, err := ParseSchedule(FormatSchedule(dt))
		require.NoError(t, err)
		require.True(t, got.Equal(dt), "round trip of %v gave %v", dt, got)
	}
}

func TestParseSchedule_RejectsOtherPatterns(t *testing.T) {
	for _, s := range []string{"", "2025-05-09 22:07", "09/05/2025 22:07", "amanhã"} {
		_, err := ParseSchedule(s)
		require.Error(t, err, "input %q", s)
	}
}

func TestAlarmList_EncodeDecodeRoundTrip(t *testing.T) {
	alarms := []AlarmRecord{
		{ID: "1746824820000", Horario: "09/05/2025 às 22:07"},
		{ID: "1746824820001", Horario: "01/06/2025 às 08:00"},
	}

	value, err := EncodeAlarms(alarms)
	require.NoError(t, err)

	back, err := DecodeAlarms(value)
	require.NoError(t, err)
	require.Equal(t, alarms, back)
}

func TestDecodeAlarms_CorruptValue(t *testing.T) {
	_, err := DecodeAlarms(`[{"id":`)
	require.ErrorIs(t, err, common.ErrCorruptRecord)
}
