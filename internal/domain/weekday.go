package domain

import (
	"fmt"
	"strings"
	"time"
)

// Weekday день недели в том виде, в котором он хранится в расписании бизнеса
type Weekday string

const (
	Lunes     Weekday = "lunes"
	Martes    Weekday = "martes"
	Miercoles Weekday = "miercoles"
	Jueves    Weekday = "jueves"
	Viernes   Weekday = "viernes"
	Sabado    Weekday = "sabado"
	Domingo   Weekday = "domingo"
)

// AllWeekdays дни недели, начиная с понедельника
var AllWeekdays = []Weekday{Lunes, Martes, Miercoles, Jueves, Viernes, Sabado, Domingo}

var weekdayByTime = map[time.Weekday]Weekday{
	time.Monday:    Lunes,
	time.Tuesday:   Martes,
	time.Wednesday: Miercoles,
	time.Thursday:  Jueves,
	time.Friday:    Viernes,
	time.Saturday:  Sabado,
	time.Sunday:    Domingo,
}

// WeekdayOf день недели даты
func WeekdayOf(date time.Time) Weekday {
	return weekdayByTime[date.Weekday()]
}

// ParseWeekday принимает названия с акцентами и в любом регистре ("Miércoles", "SÁBADO")
func ParseWeekday(s string) (Weekday, error) {
	normalized := strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u").
		Replace(strings.ToLower(strings.TrimSpace(s)))

	wd := Weekday(normalized)
	if !wd.IsValid() {
		return "", fmt.Errorf("%w: unknown weekday %q", ErrValidation, s)
	}
	return wd, nil
}

// IsValid true для известного дня недели
func (w Weekday) IsValid() bool {
	for _, d := range AllWeekdays {
		if d == w {
			return true
		}
	}
	return false
}
