package services

import "time"

// DateLayout is the calendar date format used in URLs and created_date.
const DateLayout = "2006-01-02"

// BusinessClock stamps orders in the restaurant's fixed UTC offset.
type BusinessClock struct {
	loc *time.Location
	now func() time.Time
}

func NewBusinessClock(loc *time.Location) *BusinessClock {
	if loc == nil {
		loc = time.UTC
	}
	return &BusinessClock{loc: loc, now: time.Now}
}

// WithNow returns a copy of the clock reading time from now.
func (c *BusinessClock) WithNow(now func() time.Time) *BusinessClock {
	return &BusinessClock{loc: c.loc, now: now}
}

func (c *BusinessClock) Location() *time.Location { return c.loc }

func (c *BusinessClock) Now() time.Time { return c.now().In(c.loc) }

// DateOf is the calendar date of t as seen in the business offset.
func (c *BusinessClock) DateOf(t time.Time) string {
	return t.In(c.loc).Format(DateLayout)
}

// ParseDate checks a YYYY-MM-DD string.
func ParseDate(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", invalid("date", "date must be YYYY-MM-DD")
	}
	return t.Format(DateLayout), nil
}
