package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	StatusPending     ReservationStatus = "pending"
	StatusFulfilled   ReservationStatus = "fulfilled"
	StatusUnfulfilled ReservationStatus = "unfulfilled"
	StatusRescheduled ReservationStatus = "rescheduled"
)

// ActiveStatuses статусы, занимающие слот ресурса
var ActiveStatuses = []ReservationStatus{StatusPending, StatusFulfilled}

// transitions допустимые переходы. Все статусы кроме pending конечные.
var transitions = map[ReservationStatus][]ReservationStatus{
	StatusPending: {StatusFulfilled, StatusUnfulfilled, StatusRescheduled},
}

// CanTransition проверяет допустимость перехода
func CanTransition(from, to ReservationStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsValid true для известного статуса
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusFulfilled, StatusUnfulfilled, StatusRescheduled:
		return true
	}
	return false
}

// UnfulfilledReason причина, по которой бронирование не состоялось
type UnfulfilledReason string

const (
	ReasonNoShow            UnfulfilledReason = "no_show"
	ReasonCustomerCancelled UnfulfilledReason = "customer_cancelled"
	ReasonBusinessCancelled UnfulfilledReason = "business_cancelled"
	ReasonOther             UnfulfilledReason = "other"

	// Системные причины, выбрать вручную нельзя
	ReasonAutoExpired   UnfulfilledReason = "auto_expired"
	ReasonPaymentFailed UnfulfilledReason = "payment_failed"
)

// IsSelectable true для причин, доступных пользователю
func (r UnfulfilledReason) IsSelectable() bool {
	switch r {
	case ReasonNoShow, ReasonCustomerCancelled, ReasonBusinessCancelled, ReasonOther:
		return true
	}
	return false
}

// Customer данные клиента, копируются при переносе
type Customer struct {
	Name     string
	Email    string
	Phone    string
	Document string
}

// Reservation бронирование ресурса (специалиста или корта) на дату и время
type Reservation struct {
	ID         int64
	BusinessID int64
	ResourceID int64
	ServiceID  *int64
	Date       time.Time // календарная дата, время не используется
	Time       types.TimeString
	Status     ReservationStatus
	Customer   Customer
	Notes      *string

	UnfulfilledReason *UnfulfilledReason
	ReasonNote        *string

	RescheduleReason  *string
	RescheduledFromID *int64
	RescheduledToID   *int64

	PaymentURL  *string
	FulfilledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive true, если бронирование занимает слот
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusFulfilled
}

// ScheduledAt момент начала бронирования в локации loc
func (r *Reservation) ScheduledAt(loc *time.Location) time.Time {
	return r.Time.OnDate(DateOnly(r.Date, loc))
}

// IsOverdue true, если pending бронирование не отмечено в течение AutoSweepDelay после начала
func (r *Reservation) IsOverdue(now time.Time) bool {
	if r.Status != StatusPending {
		return false
	}
	return !now.Before(r.ScheduledAt(now.Location()).Add(AutoSweepDelay))
}

// MarkFulfilled pending -> fulfilled. Нужна выбранная услуга и наступившее время (кроме демо-режима).
func (r *Reservation) MarkFulfilled(serviceID *int64, now time.Time, demoMode bool) error {
	if !CanTransition(r.Status, StatusFulfilled) {
		return ErrInvalidTransition
	}
	if serviceID == nil || *serviceID <= 0 {
		return ErrServiceRequired
	}
	if !demoMode && now.Before(r.ScheduledAt(now.Location())) {
		return ErrTooEarly
	}

	r.Status = StatusFulfilled
	r.ServiceID = serviceID
	r.FulfilledAt = &now
	return nil
}

// MarkUnfulfilled pending -> unfulfilled с причиной.
// Текст допускается только для ReasonOther и для неё обязателен.
// Неявку нельзя отметить до назначенного времени (кроме демо-режима).
func (r *Reservation) MarkUnfulfilled(reason UnfulfilledReason, note string, now time.Time, demoMode bool) error {
	if !CanTransition(r.Status, StatusUnfulfilled) {
		return ErrInvalidTransition
	}
	if reason == "" {
		return ErrReasonRequired
	}
	if !reason.IsSelectable() {
		return ErrUnknownReason
	}

	note = strings.TrimSpace(note)
	switch {
	case reason == ReasonOther && note == "":
		return ErrReasonRequired
	case reason != ReasonOther && note != "":
		return ErrNoteNotAllowed
	}

	if reason == ReasonNoShow && !demoMode && now.Before(r.ScheduledAt(now.Location())) {
		return ErrTooEarly
	}

	r.Status = StatusUnfulfilled
	r.UnfulfilledReason = &reason
	if note != "" {
		r.ReasonNote = &note
	} else {
		r.ReasonNote = nil
	}
	return nil
}

// Reschedule переводит бронирование в rescheduled и возвращает новое pending бронирование
// с теми же клиентом, услугой и (если resourceID == 0) ресурсом.
// Ссылка RescheduledToID проставляется после сохранения нового бронирования.
func (r *Reservation) Reschedule(date time.Time, t types.TimeString, resourceID int64, reason string) (*Reservation, error) {
	if !CanTransition(r.Status, StatusRescheduled) {
		return nil, ErrInvalidTransition
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}
	if resourceID == 0 {
		resourceID = r.ResourceID
	}
	if IsSameDay(date, r.Date) && t == r.Time && resourceID == r.ResourceID {
		return nil, ErrRescheduleSameSlot
	}

	predecessorID := r.ID
	successor := &Reservation{
		BusinessID:        r.BusinessID,
		ResourceID:        resourceID,
		ServiceID:         copyInt64(r.ServiceID),
		Date:              date,
		Time:              t,
		Status:            StatusPending,
		Customer:          r.Customer,
		Notes:             copyString(r.Notes),
		RescheduleReason:  &reason,
		RescheduledFromID: &predecessorID,
	}

	r.Status = StatusRescheduled
	r.RescheduleReason = &reason
	return successor, nil
}

// Abandon снимает pending бронирование с системной причиной и освобождает слот
func (r *Reservation) Abandon(reason UnfulfilledReason) error {
	if r.Status != StatusPending {
		return ErrInvalidTransition
	}
	r.Status = StatusUnfulfilled
	r.UnfulfilledReason = &reason
	r.ReasonNote = nil
	return nil
}

// SweepOverdue переводит просроченные pending бронирования в unfulfilled
// и возвращает изменённые записи
func SweepOverdue(reservations []*Reservation, now time.Time) []*Reservation {
	swept := make([]*Reservation, 0)
	for _, r := range reservations {
		if !r.IsOverdue(now) {
			continue
		}
		if err := r.Abandon(ReasonAutoExpired); err != nil {
			continue
		}
		swept = append(swept, r)
	}
	return swept
}

// ReservationFilter фильтр выборки бронирований бизнеса
type ReservationFilter struct {
	BusinessID int64               // Обязательный параметр
	ResourceID *int64              // Конкретный ресурс
	Date       *time.Time          // Конкретная дата
	From       *time.Time          // Начало периода (включительно)
	To         *time.Time          // Конец периода (включительно)
	Statuses   []ReservationStatus // Пусто - любые статусы
	Email      *string             // Email клиента
	Document   *string             // Документ клиента
}

func copyInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
