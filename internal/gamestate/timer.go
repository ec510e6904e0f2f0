package gamestate

import (
	"context"
	"time"
)

// SetTimerDuration selects a new session length, between one minute and
// the configured maximum. Rejected while running.
func (s *Store) SetTimerDuration(minutes int) error {
	if minutes <= 0 || minutes > s.maxTimerSeconds()/60 {
		return ErrInvalidDuration
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer.Get().Running() {
		return ErrTimerRunning
	}
	secs := minutes * 60
	s.stopTickLocked()
	s.setTimerLocked(TimerState{Phase: PhaseIdle, Remaining: secs, Duration: secs})
	save(s, s.keys.timerDuration, secs)
	return nil
}

// StartTimer starts the countdown from the remaining time.
func (s *Store) StartTimer() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.timer.Get()
	switch {
	case st.Running():
		return ErrTimerRunning
	case st.Remaining <= 0:
		return ErrTimerEmpty
	}

	st.Phase = PhaseRunning
	st.TargetEnd = s.clock.Now().Add(time.Duration(st.Remaining) * time.Second)
	s.setTimerLocked(st)
	s.startTickLocked()
	return nil
}

// PauseTimer stops the countdown, keeping the remaining time.
func (s *Store) PauseTimer() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.timer.Get()
	if !st.Running() {
		return ErrTimerNotRunning
	}
	now := s.clock.Now()
	rem := min(secondsUntil(st.TargetEnd, now), st.Remaining)
	if rem == 0 {
		// The tick has not caught up with an already finished session.
		s.expireLocked(now, false)
		return nil
	}

	s.stopTickLocked()
	s.setTimerLocked(TimerState{Phase: PhaseIdle, Remaining: rem, Duration: st.Duration})
	return nil
}

// ToggleTimer pauses a running timer and starts an idle one.
func (s *Store) ToggleTimer() error {
	if s.timer.Get().Running() {
		return s.PauseTimer()
	}
	return s.StartTimer()
}

// ResetTimer restores the full selected duration.
func (s *Store) ResetTimer() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.timer.Get()
	if st.Running() {
		return ErrTimerRunning
	}
	s.setTimerLocked(TimerState{Phase: PhaseIdle, Remaining: st.Duration, Duration: st.Duration})
	return nil
}

// setTimerLocked publishes st and persists its anchor and remaining time.
func (s *Store) setTimerLocked(st TimerState) {
	s.timer.Set(st)
	save(s, s.keys.timerTargetEnd, st.TargetEnd)
	save(s, s.keys.timerRemaining, st.Remaining)
}

func (s *Store) startTickLocked() {
	if s.tickCancel != nil || s.closed {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.tickCancel = cancel

	s.loops.Add(1)
	go func() {
		defer s.loops.Done()
		s.tickLoop(ctx)
	}()
}

// stopTickLocked cancels the tick loop. It does not wait: the loop may be
// blocked on s.mu.
func (s *Store) stopTickLocked() {
	if s.tickCancel != nil {
		s.tickCancel()
		s.tickCancel = nil
	}
}

func (s *Store) tickLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Timer.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.tick() {
				return
			}
		}
	}
}

// tick recomputes the remaining time from the anchor. It reports whether the
// loop should keep going.
func (s *Store) tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.timer.Get()
	if s.closed || !st.Running() {
		return false
	}
	now := s.clock.Now()
	rem := secondsUntil(st.TargetEnd, now)
	if rem == 0 {
		s.expireLocked(now, false)
		return false
	}
	// Remaining only counts down, even when a restart floored it below the
	// rounded-up live value.
	if rem < st.Remaining {
		st.Remaining = rem
		s.timer.Set(st)
	}
	return true
}

// expireLocked finishes a running session: the anchor is cleared and the
// reward and history entry are granted.
func (s *Store) expireLocked(now time.Time, whileClosed bool) {
	st := s.timer.Get()
	s.stopTickLocked()
	s.setTimerLocked(TimerState{Phase: PhaseExpired, Duration: st.Duration})

	at := st.TargetEnd
	if at.IsZero() {
		at = now
	}
	if whileClosed && !s.cfg.Timer.GrantMissedReward {
		s.logger.Info("focus session ended while closed, reward forfeited", "target", at)
		return
	}

	reward := s.cfg.Economy.SessionReward
	minutes := st.Duration / 60
	if reward > 0 {
		s.earnLocked(reward)
	}
	s.recordSessionLocked(minutes, at)
	s.logger.Info("focus session complete", "minutes", minutes, "reward", reward, "while_closed", whileClosed)
	s.publishLocked(TimerCompleted{Minutes: minutes, Reward: reward, At: at, WhileClosed: whileClosed})
}

// reconcileTimerLocked restores the timer on cold start from its persisted
// anchor.
func (s *Store) reconcileTimerLocked(ctx context.Context, now time.Time) {
	limit := s.maxTimerSeconds()
	duration := load(ctx, s, s.keys.timerDuration)
	if duration <= 0 || duration > limit {
		duration = s.keys.timerDuration.Default
	}
	remaining := min(max(load(ctx, s, s.keys.timerRemaining), 0), limit)
	target := load(ctx, s, s.keys.timerTargetEnd)
	if !target.IsZero() && target.Sub(now) > time.Duration(limit)*time.Second {
		s.logger.Warn("discarding timer anchor beyond the longest session", "target", target)
		target = time.Time{}
	}

	switch {
	case target.IsZero():
		phase := PhaseIdle
		if remaining == 0 {
			phase = PhaseExpired
		}
		s.timer.Set(TimerState{Phase: phase, Remaining: remaining, Duration: duration})
	case target.After(now):
		remaining = wholeSecondsUntil(target, now)
		s.timer.Set(TimerState{
			Phase:     PhaseRunning,
			Remaining: remaining,
			Duration:  duration,
			TargetEnd: target,
		})
		s.startTickLocked()
		s.logger.Debug("timer resumed", "remaining", remaining)
	default:
		s.timer.Set(TimerState{Phase: PhaseRunning, Duration: duration, TargetEnd: target})
		s.expireLocked(now, true)
	}
}

// secondsUntil is the live countdown: seconds left before target, rounded up
// so a running session never reports zero before it has actually ended.
func secondsUntil(target, now time.Time) int {
	d := target.Sub(now)
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}

// wholeSecondsUntil is the remaining time restored on cold start: whole
// seconds before target, rounded down.
func wholeSecondsUntil(target, now time.Time) int {
	d := target.Sub(now)
	if d <= 0 {
		return 0
	}
	return int(d / time.Second)
}

func (s *Store) maxTimerSeconds() int {
	return int(s.cfg.Timer.MaxDuration / time.Second)
}
