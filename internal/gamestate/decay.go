package gamestate

import (
	"context"
	"time"
)

// DecayResult is the outcome of applying idle decay once.
type DecayResult struct {
	Health        int
	Lost          int       // whole intervals elapsed, before clamping
	Anchor        time.Time // new last-decay instant
	AnchorChanged bool
	ClockSkew     bool // now was before the anchor; re-anchored without penalty
}

// Decay charges one health unit per whole interval elapsed since last. The
// anchor advances by exactly the intervals charged so partial progress
// carries over to the next call. A zero anchor is the first run and only
// anchors. Health never goes below zero.
func Decay(last, now time.Time, health int, interval time.Duration) DecayResult {
	res := DecayResult{Health: health, Anchor: last}
	switch {
	case last.IsZero():
		res.Anchor, res.AnchorChanged = now, true
		return res
	case now.Before(last):
		res.Anchor, res.AnchorChanged, res.ClockSkew = now, true, true
		return res
	}

	units := int(now.Sub(last) / interval)
	if units <= 0 {
		return res
	}
	res.Lost = units
	res.Health = max(health-units, 0)
	res.Anchor = last.Add(time.Duration(units) * interval)
	res.AnchorChanged = true
	return res
}

func (s *Store) applyDecayLocked(ctx context.Context, now time.Time) {
	last := load(ctx, s, s.keys.lastHealthTime)
	before := s.health.Get()
	res := Decay(last, now, before, s.cfg.Decay.Interval)

	if res.ClockSkew {
		s.logger.Info("clock moved backwards, decay re-anchored", "last", last, "now", now)
	}
	if res.AnchorChanged {
		save(s, s.keys.lastHealthTime, res.Anchor)
	}
	if res.Lost == 0 {
		return
	}

	s.health.Set(res.Health)
	save(s, s.keys.health, res.Health)
	s.logger.Info("cat got hungry while you were away", "lost", before-res.Health, "health", res.Health)
	if res.Health == 0 && before > 0 {
		s.publishLocked(HealthDepleted{At: now})
	}
}
