package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

func pendingAt(date string, at string) *Reservation {
	d, _ := time.Parse(DateFormat, date)
	return &Reservation{
		ID:         10,
		BusinessID: 1,
		ResourceID: 3,
		ServiceID:  ptr.Ptr(int64(5)),
		Date:       d,
		Time:       types.MustTimeString(at),
		Status:     StatusPending,
		Customer: Customer{
			Name:     "Ana Torres",
			Email:    "ana@example.com",
			Phone:    "3001234567",
			Document: "10203040",
		},
		Notes: ptr.Ptr("corte y barba"),
	}
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusFulfilled))
	assert.True(t, CanTransition(StatusPending, StatusUnfulfilled))
	assert.True(t, CanTransition(StatusPending, StatusRescheduled))

	for _, terminal := range []ReservationStatus{StatusFulfilled, StatusUnfulfilled, StatusRescheduled} {
		for _, to := range []ReservationStatus{StatusPending, StatusFulfilled, StatusUnfulfilled, StatusRescheduled} {
			assert.False(t, CanTransition(terminal, to), "%s -> %s", terminal, to)
		}
	}
}

func TestReservation_MarkFulfilled(t *testing.T) {
	before := time.Date(2025, 3, 4, 9, 59, 0, 0, time.UTC)
	after := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)

	t.Run("requires service", func(t *testing.T) {
		r := pendingAt("2025-03-04", "10:00")
		assert.ErrorIs(t, r.MarkFulfilled(nil, after, false), ErrServiceRequired)
		assert.Equal(t, StatusPending, r.Status)
	})

	t.Run("too early", func(t *testing.T) {
		r := pendingAt("2025-03-04", "10:00")
		err := r.MarkFulfilled(ptr.Ptr(int64(5)), before, false)
		assert.ErrorIs(t, err, ErrTooEarly)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("demo mode bypasses time guard", func(t *testing.T) {
		r := pendingAt("2025-03-04", "10:00")
		require.NoError(t, r.MarkFulfilled(ptr.Ptr(int64(7)), before, true))
		assert.Equal(t, StatusFulfilled, r.Status)
		assert.Equal(t, int64(7), *r.ServiceID)
	})

	t.Run("at scheduled time", func(t *testing.T) {
		r := pendingAt("2025-03-04", "10:00")
		require.NoError(t, r.MarkFulfilled(ptr.Ptr(int64(5)), after, false))
		assert.Equal(t, StatusFulfilled, r.Status)
		require.NotNil(t, r.FulfilledAt)
	})

	t.Run("terminal", func(t *testing.T) {
		r := pendingAt("2025-03-04", "10:00")
		r.Status = StatusUnfulfilled
		assert.ErrorIs(t, r.MarkFulfilled(ptr.Ptr(int64(5)), after, false), ErrInvalidTransition)
	})
}

func TestReservation_MarkUnfulfilled(t *testing.T) {
	now := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		reason  UnfulfilledReason
		note    string
		wantErr error
	}{
		{name: "no reason", reason: "", wantErr: ErrReasonRequired},
		{name: "system reason", reason: ReasonAutoExpired, wantErr: ErrUnknownReason},
		{name: "payment failed reason", reason: ReasonPaymentFailed, wantErr: ErrUnknownReason},
		{name: "unknown reason", reason: "weather", wantErr: ErrUnknownReason},
		{name: "note without other", reason: ReasonNoShow, note: "llegó tarde", wantErr: ErrNoteNotAllowed},
		{name: "other without note", reason: ReasonOther, note: "  ", wantErr: ErrReasonRequired},
		{name: "other with note", reason: ReasonOther, note: "corte de luz"},
		{name: "no show", reason: ReasonNoShow},
		{name: "customer cancelled", reason: ReasonCustomerCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := pendingAt("2025-03-04", "10:00")
			err := r.MarkUnfulfilled(tt.reason, tt.note, now, false)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, StatusPending, r.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusUnfulfilled, r.Status)
			assert.Equal(t, tt.reason, *r.UnfulfilledReason)
		})
	}
}

func TestReservation_MarkUnfulfilled_NoShowBeforeTime(t *testing.T) {
	r := pendingAt("2025-03-04", "10:00")
	early := time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC)

	assert.ErrorIs(t, r.MarkUnfulfilled(ReasonNoShow, "", early, false), ErrTooEarly)
	require.NoError(t, r.MarkUnfulfilled(ReasonCustomerCancelled, "", early, false))
}

func TestReservation_Reschedule_CopiesFields(t *testing.T) {
	r := pendingAt("2025-03-04", "10:00")
	newDate := time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)

	next, err := r.Reschedule(newDate, types.MustTimeString("16:30"), 0, "cliente pidió cambio")
	require.NoError(t, err)

	assert.Equal(t, StatusRescheduled, r.Status)
	assert.Equal(t, "cliente pidió cambio", *r.RescheduleReason)

	assert.Equal(t, StatusPending, next.Status)
	assert.Equal(t, r.Customer, next.Customer)
	assert.Equal(t, r.ResourceID, next.ResourceID)
	assert.Equal(t, r.BusinessID, next.BusinessID)
	assert.Equal(t, *r.ServiceID, *next.ServiceID)
	assert.NotSame(t, r.ServiceID, next.ServiceID)
	assert.Equal(t, *r.Notes, *next.Notes)
	assert.Equal(t, newDate, next.Date)
	assert.Equal(t, types.TimeString("16:30"), next.Time)
	assert.Equal(t, r.ID, *next.RescheduledFromID)
	assert.Zero(t, next.ID)
}

func TestReservation_Reschedule_Guards(t *testing.T) {
	r := pendingAt("2025-03-04", "10:00")

	_, err := r.Reschedule(r.Date, r.Time, 0, "mismo")
	assert.ErrorIs(t, err, ErrRescheduleSameSlot)

	_, err = r.Reschedule(r.Date, "11:00", 0, " ")
	assert.ErrorIs(t, err, ErrReasonRequired)

	// Другой ресурс в то же время - допустимо
	next, err := r.Reschedule(r.Date, r.Time, 9, "cambio de profesional")
	require.NoError(t, err)
	assert.Equal(t, int64(9), next.ResourceID)

	_, err = r.Reschedule(r.Date, "12:00", 0, "otra vez")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSweepOverdue(t *testing.T) {
	now := time.Date(2025, 3, 4, 13, 0, 0, 0, time.UTC)

	overdue := pendingAt("2025-03-04", "10:00")   // 10:00 + 3h = 13:00 -> просрочено
	fresh := pendingAt("2025-03-04", "10:15")     // 13:15 > now
	done := pendingAt("2025-03-03", "09:00")      // не pending
	done.Status = StatusFulfilled

	swept := SweepOverdue([]*Reservation{overdue, fresh, done}, now)

	require.Len(t, swept, 1)
	assert.Same(t, overdue, swept[0])
	assert.Equal(t, StatusUnfulfilled, overdue.Status)
	assert.Equal(t, ReasonAutoExpired, *overdue.UnfulfilledReason)
	assert.Equal(t, StatusPending, fresh.Status)
	assert.Equal(t, StatusFulfilled, done.Status)
}

func TestReservation_Abandon(t *testing.T) {
	r := pendingAt("2025-03-04", "10:00")
	r.ReasonNote = ptr.Ptr("nota")

	require.NoError(t, r.Abandon(ReasonPaymentFailed))
	assert.Equal(t, StatusUnfulfilled, r.Status)
	assert.Equal(t, ReasonPaymentFailed, *r.UnfulfilledReason)
	assert.Nil(t, r.ReasonNote)

	assert.ErrorIs(t, r.Abandon(ReasonPaymentFailed), ErrInvalidTransition)
}
