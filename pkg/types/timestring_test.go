package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{"plain", "10:30", "10:30", false},
		{"with seconds", "10:30:00", "10:30", false},
		{"single digit hour", "9:00", "09:00", false},
		{"midnight", "00:00", "00:00", false},
		{"empty", "", "", true},
		{"garbage", "noon", "", true},
		{"out of range", "25:99", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 15, 14, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("14:05"), ts)
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("08:00").Validate())
	assert.ErrorIs(t, TimeString("8 утра").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("").Validate(), ErrInvalidTimeString)
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	m, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("17:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:00"), ts)

	ts, err = TimeString("10:00").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("08:30"))
	assert.True(t, TimeString("17:30").IsAfter("08:00"))
	assert.False(t, TimeString("10:30").IsBefore("10:30"))
	assert.False(t, TimeString("10:30").IsAfter("10:30"))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("25:99").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:00:00"))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan([]byte("17:30")))
	assert.Equal(t, TimeString("17:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 9, 15, 11, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
