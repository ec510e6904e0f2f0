package gamestate

import (
	"context"
	"slices"
	"time"
)

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// ResetDaily returns a copy of list with every daily todo unchecked.
func ResetDaily(list []TodoItem) []TodoItem {
	out := slices.Clone(list)
	for i := range out {
		if out[i].Daily {
			out[i].Done = false
		}
	}
	return out
}

func (s *Store) applyRolloverLocked(ctx context.Context, now time.Time) {
	last := load(ctx, s, s.keys.lastOpenDate)
	if !last.IsZero() && SameDay(last, now, s.location) {
		return
	}
	s.setTodosLocked(nonNilSlice(ResetDaily(s.todos.Get())))
	save(s, s.keys.lastOpenDate, now)
	s.logger.Debug("new day, daily todos reset")
}
