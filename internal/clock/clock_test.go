package clock

import (
	"testing"
	"time"
)

func TestRealClockNow(t *testing.T) {
	clk := Real{}
	if clk.Now().IsZero() {
		t.Fatalf("expected non-zero time")
	}
}

func TestFakeClockAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clk := NewFake(start)

	if !clk.Now().Equal(start) {
		t.Fatalf("expected start time")
	}

	clk.Advance(1500 * time.Millisecond)
	want := start.Add(1500 * time.Millisecond)
	if !clk.Now().Equal(want) {
		t.Fatalf("expected %v got %v", want, clk.Now())
	}

	clk.Advance(-time.Hour)
	want = want.Add(-time.Hour)
	if !clk.Now().Equal(want) {
		t.Fatalf("expected %v after moving backwards, got %v", want, clk.Now())
	}
}

func TestFakeClockSet(t *testing.T) {
	clk := NewFake(time.Time{})
	at := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	clk.Set(at)
	if !clk.Now().Equal(at) {
		t.Fatalf("expected %v got %v", at, clk.Now())
	}
}
