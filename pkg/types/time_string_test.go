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
		in      string
		want    TimeString
		wantErr bool
	}{
		{name: "canonical", in: "10:45", want: "10:45"},
		{name: "single digit hour", in: "9:05", want: "09:05"},
		{name: "postgres time", in: "18:30:00", want: "18:30"},
		{name: "trailing spaces", in: " 07:00 ", want: "07:00"},
		{name: "hour out of range", in: "24:00", wantErr: true},
		{name: "minute out of range", in: "10:60", wantErr: true},
		{name: "one digit minute", in: "10:5", wantErr: true},
		{name: "seconds not zero", in: "10:00:30", wantErr: true},
		{name: "garbage", in: "diez", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Arithmetic(t *testing.T) {
	start := MustTimeString("12:15")

	next, err := start.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("13:00"), next)
	assert.True(t, start.IsBefore(next))
	assert.True(t, next.IsAfter(start))

	_, err = MustTimeString("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("08:15:00")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 21, 40, 10, 0, time.UTC)))
	assert.Equal(t, TimeString("21:40"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 4, 15, 15, 0, 0, time.UTC), MustTimeString("15:15").OnDate(date))
}
