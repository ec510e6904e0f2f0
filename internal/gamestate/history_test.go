package gamestate

import (
	"testing"
	"time"
)

func TestComputeStats(t *testing.T) {
	now := epoch
	history := []StudySession{
		{Timestamp: now.Add(-time.Hour), DurationMinutes: 25},
		{Timestamp: now.Add(-2 * time.Hour), DurationMinutes: 50},
		{Timestamp: now.Add(-30 * time.Hour), DurationMinutes: 25},
		{Timestamp: now.Add(-6*24*time.Hour - time.Hour), DurationMinutes: 15},
		{Timestamp: now.Add(-7*24*time.Hour - time.Hour), DurationMinutes: 90},
	}

	st := ComputeStats(history, now)
	if st.TotalSessions != 5 || st.TotalMinutes != 205 {
		t.Fatalf("totals = %d sessions / %d minutes", st.TotalSessions, st.TotalMinutes)
	}
	want := [7]int{15, 0, 0, 0, 0, 25, 75}
	if st.Last7Days != want {
		t.Fatalf("last 7 days = %v, want %v", st.Last7Days, want)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	if st := ComputeStats(nil, epoch); st != (StudyStats{}) {
		t.Fatalf("stats = %+v", st)
	}
}
