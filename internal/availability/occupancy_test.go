package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

func TestFilterOccupied(t *testing.T) {
	slots := ts("10:00", "10:45", "11:30", "12:15")

	tests := []struct {
		name   string
		booked []types.TimeString
		want   []types.TimeString
	}{
		{name: "nothing booked", booked: nil, want: slots},
		{name: "one booked", booked: ts("10:45"), want: ts("10:00", "11:30", "12:15")},
		{name: "postgres time format", booked: []types.TimeString{"11:30:00", "9:00"}, want: ts("10:00", "10:45", "12:15")},
		{name: "booked time not a slot", booked: ts("11:00"), want: slots},
		{name: "everything booked", booked: slots, want: ts()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterOccupied(slots, tt.booked))
		})
	}
}

func TestFilterOccupied_Idempotent(t *testing.T) {
	slots := ts("09:00", "09:30", "10:00", "10:30")
	booked := ts("09:30", "10:30")

	once := FilterOccupied(slots, booked)
	twice := FilterOccupied(once, booked)

	assert.Equal(t, once, twice)
	assert.Equal(t, ts("09:00", "10:00"), once)
}

func TestFilterOccupied_DoesNotMutateInput(t *testing.T) {
	slots := ts("09:00", "09:30")
	_ = FilterOccupied(slots, ts("09:00"))
	assert.Equal(t, ts("09:00", "09:30"), slots)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(ts("09:00", "09:30"), "9:30"))
	assert.False(t, Contains(ts("09:00"), "09:15"))
}
