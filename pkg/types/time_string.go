package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

// TimeString время суток в нормализованном формате HH:MM (24h)
type TimeString string

// NewTimeStringFromString парсит и нормализует время.
// Принимает "9:00", "09:00" и "09:00:00" (формат PostgreSQL TIME).
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if len(parts[1]) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if len(parts) == 3 {
		if sec, err := strconv.Atoi(parts[2]); err != nil || sec != 0 {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}

	return FromMinutes(hours*60 + minutes), nil
}

// MustTimeString как NewTimeStringFromString, но паникует при ошибке (для констант и тестов)
func MustTimeString(s string) TimeString {
	t, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTimeString берёт время суток из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return FromMinutes(t.Hour()*60 + t.Minute())
}

// FromMinutes строит время из количества минут от полуночи
func FromMinutes(m int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

// Minutes возвращает количество минут от полуночи.
// Для некорректного значения возвращает -1.
func (t TimeString) Minutes() int {
	if len(t) != 5 || t[2] != ':' {
		return -1
	}
	h, err := strconv.Atoi(string(t[:2]))
	if err != nil {
		return -1
	}
	m, err := strconv.Atoi(string(t[3:]))
	if err != nil {
		return -1
	}
	return h*60 + m
}

// AddMinutes прибавляет минуты; результат за пределами суток - ошибка
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := t.Minutes() + minutes
	if t.Minutes() < 0 || total < 0 || total >= MinutesPerDay {
		return "", fmt.Errorf("%w: %s%+d min out of day range", ErrInvalidTimeString, t, minutes)
	}
	return FromMinutes(total), nil
}

// IsBefore строго раньше
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter строго позже
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	if t.Minutes() < 0 || t.Minutes() >= MinutesPerDay {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String реализует fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}

// OnDate возвращает момент времени t в дату date (в локации date)
func (t TimeString) OnDate(date time.Time) time.Time {
	m := t.Minutes()
	return time.Date(date.Year(), date.Month(), date.Day(), m/60, m%60, 0, 0, date.Location())
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner. PostgreSQL TIME приходит как "HH:MM:SS" ([]byte или string) либо time.Time.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}
