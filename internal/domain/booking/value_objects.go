package booking

import (
	"errors"
	"time"
)

var ErrInvalidPeriod = errors.New("end must be after start")

// Period is the rental time window. End is strictly after start; the
// future-or-present start constraint belongs to the request validation
// layer, not here.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if !end.After(start) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

// Contains reports an in-progress rental, inclusive at both ends.
func (p Period) Contains(now time.Time) bool {
	return !p.start.After(now) && !p.end.Before(now)
}

func (p Period) IsPast(now time.Time) bool {
	return p.end.Before(now)
}

func (p Period) IsFuture(now time.Time) bool {
	return p.start.After(now)
}
