package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDisplayTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  MinuteOfDay
	}{
		{"afternoon", "2:30 PM", 870},
		{"midnight", "12:00 AM", 0},
		{"noon", "12:00 PM", 720},
		{"lowercase meridiem", "9:15 am", 555},
		{"glued meridiem", "11:45PM", 1425},
		{"missing minutes", "7 PM", 1140},
		{"24h without meridiem", "14:05", 845},
		{"bare hour", "9", 540},
		{"surrounding spaces", "  6:00 pm ", 1080},
		{"last minute", "11:59 PM", 1439},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDisplayTime(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDisplayTime_InvalidFormat(t *testing.T) {
	inputs := []string{
		"",
		"PM",
		"ab:cd",
		"2:3x PM",
		":30",
		"2:",
		"13:00 PM",
		"0:30 AM",
		"24:00",
		"10:60",
		"123:00",
		"1:2:3",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDisplayTime(input)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestMinuteOfDay_String(t *testing.T) {
	assert.Equal(t, "12:00 AM", MinuteOfDay(0).String())
	assert.Equal(t, "12:00 PM", MinuteOfDay(720).String())
	assert.Equal(t, "12:30 AM", MinuteOfDay(30).String())
	assert.Equal(t, "1:05 PM", MinuteOfDay(785).String())
	assert.Equal(t, "11:59 PM", MinuteOfDay(1439).String())
}

func TestMinuteOfDay_RoundTrip(t *testing.T) {
	for m := MinuteOfDay(0); m <= MaxMinuteOfDay; m++ {
		parsed, err := ParseDisplayTime(m.String())
		require.NoError(t, err, "minute %d", m)
		require.Equal(t, m, parsed, "minute %d rendered as %q", m, m.String())
	}
}

func TestMinuteOfDay_Clock(t *testing.T) {
	assert.Equal(t, "00:00", MinuteOfDay(0).Clock())
	assert.Equal(t, "21:45", MinuteOfDay(1305).Clock())
}

func TestMinuteOfDay_Validate(t *testing.T) {
	assert.NoError(t, MinuteOfDay(0).Validate())
	assert.NoError(t, MinuteOfDay(MaxMinuteOfDay).Validate())
	assert.ErrorIs(t, MinuteOfDay(-1).Validate(), ErrOutOfRange)
	assert.ErrorIs(t, MinuteOfDay(MinutesPerDay).Validate(), ErrOutOfRange)
}

func TestNewMinuteOfDay(t *testing.T) {
	m, err := NewMinuteOfDay(18, 30)
	require.NoError(t, err)
	assert.Equal(t, MinuteOfDay(1110), m)

	_, err = NewMinuteOfDay(24, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestMinuteOfDay_JSON(t *testing.T) {
	data, err := json.Marshal(MinuteOfDay(750))
	require.NoError(t, err)
	assert.JSONEq(t, `"12:30 PM"`, string(data))

	var fromText MinuteOfDay
	require.NoError(t, json.Unmarshal([]byte(`"7:00 PM"`), &fromText))
	assert.Equal(t, MinuteOfDay(1140), fromText)

	var fromNumber MinuteOfDay
	require.NoError(t, json.Unmarshal([]byte(`1140`), &fromNumber))
	assert.Equal(t, MinuteOfDay(1140), fromNumber)

	var bad MinuteOfDay
	assert.Error(t, json.Unmarshal([]byte(`"noonish"`), &bad))
	assert.ErrorIs(t, json.Unmarshal([]byte(`5000`), &bad), ErrOutOfRange)
}

func TestMinuteOfDay_Scan(t *testing.T) {
	var m MinuteOfDay
	require.NoError(t, m.Scan(int64(600)))
	assert.Equal(t, MinuteOfDay(600), m)

	require.NoError(t, m.Scan([]byte("615")))
	assert.Equal(t, MinuteOfDay(615), m)

	assert.ErrorIs(t, m.Scan("600"), ErrInvalidFormat)

	v, err := MinuteOfDay(615).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(615), v)
}
