package domain

import "time"

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Правила бронирования
const (
	// AutoSweepDelay через сколько после назначенного времени pending бронирование считается несостоявшимся
	AutoSweepDelay = 3 * time.Hour

	DefaultIntervalMinutes = 30
	MaxIntervalMinutes     = 480
	MaxNotesLength         = 500
	MaxReasonNoteLength    = 300
)

// DateOnly обнуляет время, оставляя календарную дату в локации loc
func DateOnly(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// IsSameDay true, если t1 и t2 - один календарный день
func IsSameDay(t1, t2 time.Time) bool {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
