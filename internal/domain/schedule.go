package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// DayHours часы работы в один день недели. Open строго раньше Close, переход через полночь не поддерживается.
type DayHours struct {
	Open  types.TimeString `json:"open"`
	Close types.TimeString `json:"close"`
}

// Validate проверяет формат и порядок времени
func (h DayHours) Validate() error {
	if err := h.Open.Validate(); err != nil {
		return fmt.Errorf("%w: open time: %v", ErrValidation, err)
	}
	if err := h.Close.Validate(); err != nil {
		return fmt.Errorf("%w: close time: %v", ErrValidation, err)
	}
	if !h.Open.IsBefore(h.Close) {
		return fmt.Errorf("%w: open time %s must be before close time %s", ErrValidation, h.Open, h.Close)
	}
	return nil
}

// Contains true, если t в пределах [Open, Close)
func (h DayHours) Contains(t types.TimeString) bool {
	return !t.IsBefore(h.Open) && t.IsBefore(h.Close)
}

// BusinessHours часы работы по дням недели. Отсутствующий день - выходной.
type BusinessHours map[Weekday]DayHours

// For часы работы на день недели, nil если выходной
func (b BusinessHours) For(wd Weekday) *DayHours {
	h, ok := b[wd]
	if !ok {
		return nil
	}
	return &h
}

// BlockedHours повторяющиеся по дням недели недоступные времена
type BlockedHours map[Weekday][]types.TimeString

// Blocking блокировки расписания: целые дни недели и отдельные времена
type Blocking struct {
	Days  []Weekday    `json:"days"`
	Hours BlockedHours `json:"hours"`
}

// IsDayBlocked true, если день недели заблокирован целиком
func (b Blocking) IsDayBlocked(wd Weekday) bool {
	for _, d := range b.Days {
		if d == wd {
			return true
		}
	}
	return false
}

// IsTimeBlocked true, если время заблокировано для дня недели
func (b Blocking) IsTimeBlocked(wd Weekday, t types.TimeString) bool {
	for _, blocked := range b.Hours[wd] {
		if blocked == t {
			return true
		}
	}
	return false
}

// Schedule конфигурация доступности бизнеса
type Schedule struct {
	BusinessID      int64
	Hours           BusinessHours
	IntervalMinutes int
	Blocked         Blocking
	BlockedDates    []string // YYYY-MM-DD
	UpdatedAt       time.Time
}

// IsDateBlocked true, если конкретная дата закрыта целиком
func (s *Schedule) IsDateBlocked(date time.Time) bool {
	d := date.Format(DateFormat)
	for _, blocked := range s.BlockedDates {
		if blocked == d {
			return true
		}
	}
	return false
}
