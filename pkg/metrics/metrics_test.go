package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ReservationEvents(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "agenda")

	m.IncReservationEvent(EventCreated)
	m.IncReservationEvent(EventCreated)
	m.IncReservationEvent(EventSwept)
	m.AddScheduleConflicts(3)
	m.AddScheduleConflicts(0)
	m.SetEmailQueueLength(5)
	m.SetEmailQueueLength(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReservationEvents.WithLabelValues("agenda", EventCreated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationEvents.WithLabelValues("agenda", EventSwept)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ScheduleConflicts.WithLabelValues("agenda")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EmailQueueLength.WithLabelValues("agenda")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncReservationEvent(EventCreated)
		m.AddScheduleConflicts(1)
		m.ObserveSlots(4)
		m.SetEmailQueueLength(1)
	})
	assert.Empty(t, m.ServiceName())
}
