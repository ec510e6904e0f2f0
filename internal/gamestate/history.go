package gamestate

import (
	"slices"
	"time"
)

// RecordSession appends a completed focus session stamped with the current
// time.
func (s *Store) RecordSession(minutes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordSessionLocked(minutes, s.clock.Now())
}

func (s *Store) recordSessionLocked(minutes int, at time.Time) {
	list := append(slices.Clone(s.history.Get()), StudySession{Timestamp: at, DurationMinutes: minutes})
	s.history.Set(list)
	save(s, s.keys.history, list)
}

// Stats aggregates the session history as of now.
func (s *Store) Stats(now time.Time) StudyStats {
	return ComputeStats(s.history.Get(), now)
}

// ComputeStats totals sessions and buckets minutes into the last seven
// 24-hour spans ending at now. Future sessions are counted in the totals but
// not in any day.
func ComputeStats(history []StudySession, now time.Time) StudyStats {
	var st StudyStats
	for _, sess := range history {
		st.TotalSessions++
		st.TotalMinutes += sess.DurationMinutes

		age := now.Sub(sess.Timestamp)
		if age < 0 {
			continue
		}
		if days := int(age / (24 * time.Hour)); days < len(st.Last7Days) {
			st.Last7Days[len(st.Last7Days)-1-days] += sess.DurationMinutes
		}
	}
	return st
}
