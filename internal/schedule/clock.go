package schedule

import "time"

// Clock answers "what day is it" in the business time zone.
type Clock struct {
	Location *time.Location
	Now      func() time.Time
}

func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{Location: loc, Now: time.Now}
}

// Today returns the current business date as a UTC-midnight billing date.
func (c Clock) Today() time.Time {
	return c.DateOf(c.now())
}

// DateOf maps an instant onto its business calendar date.
func (c Clock) DateOf(t time.Time) time.Time {
	y, m, d := t.In(c.Zone()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Instant returns the current time.
func (c Clock) Instant() time.Time {
	return c.now()
}

func (c Clock) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Zone returns the business time zone, UTC when unset.
func (c Clock) Zone() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}
