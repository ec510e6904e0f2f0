package session

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// TerminalAudio rings the terminal bell for every sound effect. Music is only
// tracked and logged.
type TerminalAudio struct {
	w      io.Writer
	logger *log.Logger

	muted   atomic.Bool
	playing atomic.Bool
	mu      sync.Mutex // serializes writes to w
}

// NewTerminalAudio creates an audio adapter writing bells to w.
func NewTerminalAudio(w io.Writer, logger *log.Logger) *TerminalAudio {
	if logger == nil {
		logger = log.Default()
	}
	return &TerminalAudio{w: w, logger: logger}
}

// PlaySound implements Audio.
func (a *TerminalAudio) PlaySound(s Sound) {
	if a.muted.Load() {
		return
	}
	a.logger.Debug("sound", "effect", s)
	if a.w == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	_, _ = io.WriteString(a.w, "\a")
}

// PlayLoopingMusic implements Audio.
func (a *TerminalAudio) PlayLoopingMusic() {
	if a.muted.Load() || a.playing.Swap(true) {
		return
	}
	a.logger.Debug("music started")
}

// StopMusic implements Audio.
func (a *TerminalAudio) StopMusic() {
	if a.playing.Swap(false) {
		a.logger.Debug("music stopped")
	}
}

// Playing reports whether background music is on.
func (a *TerminalAudio) Playing() bool {
	return a.playing.Load()
}

// SetMuted implements Audio. Muting also stops the music.
func (a *TerminalAudio) SetMuted(muted bool) {
	a.muted.Store(muted)
	if muted {
		a.StopMusic()
	}
}

// Muted implements Audio.
func (a *TerminalAudio) Muted() bool {
	return a.muted.Load()
}

// LogHaptics records vibrations in the log.
type LogHaptics struct {
	Logger *log.Logger
}

// Vibrate implements Haptics.
func (h LogHaptics) Vibrate(d time.Duration) {
	if h.Logger != nil {
		h.Logger.Debug("vibrate", "duration", d)
	}
}

// LogNotifier delivers notifications as log lines. The reminder is a
// fire-and-forget timer that is lost when the process exits.
type LogNotifier struct {
	logger *log.Logger
	onFire func()

	mu       sync.Mutex
	reminder *time.Timer
}

// NewLogNotifier creates a notifier. onFire, if set, runs when a reminder
// goes off.
func NewLogNotifier(logger *log.Logger, onFire func()) *LogNotifier {
	if logger == nil {
		logger = log.Default()
	}
	return &LogNotifier{logger: logger, onFire: onFire}
}

// ShowTimerCompleteNotification implements Notifier.
func (n *LogNotifier) ShowTimerCompleteNotification() {
	n.logger.Info("focus session complete, your cat is proud of you")
}

// ScheduleReminder implements Notifier.
func (n *LogNotifier) ScheduleReminder(delay time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.reminder != nil {
		n.reminder.Stop()
	}
	n.reminder = time.AfterFunc(delay, func() {
		n.logger.Info("your cat misses you")
		if n.onFire != nil {
			n.onFire()
		}
	})
}

// CancelReminder implements Notifier.
func (n *LogNotifier) CancelReminder() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.reminder != nil {
		n.reminder.Stop()
		n.reminder = nil
	}
}

// Pending reports whether a reminder is scheduled.
func (n *LogNotifier) Pending() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.reminder != nil
}

// NopAudio does nothing but remember the mute switch.
type NopAudio struct {
	muted atomic.Bool
}

func (*NopAudio) PlaySound(Sound) {}
func (*NopAudio) PlayLoopingMusic() {}
func (*NopAudio) StopMusic() {}
func (a *NopAudio) SetMuted(muted bool) { a.muted.Store(muted) }
func (a *NopAudio) Muted() bool { return a.muted.Load() }

// NopHaptics does nothing.
type NopHaptics struct{}

func (NopHaptics) Vibrate(time.Duration) {}

// NopNotifier does nothing.
type NopNotifier struct{}

func (NopNotifier) ShowTimerCompleteNotification() {}
func (NopNotifier) ScheduleReminder(time.Duration) {}
func (NopNotifier) CancelReminder() {}
