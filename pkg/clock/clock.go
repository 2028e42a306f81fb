package clock

import "time"

// Clock текущее время в часовом поясе сервиса
type Clock struct {
	loc *time.Location
}

// New создает часы для локации loc (nil = time.Local)
func New(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.Local
	}
	return &Clock{loc: loc}
}

// Now текущее время
func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Location часовой пояс
func (c *Clock) Location() *time.Location {
	return c.loc
}
