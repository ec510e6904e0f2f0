// Package session wires a UI session to the game state: each user action goes
// through a Coordinator, which calls the store and triggers sound, haptic and
// notification side effects. The collaborators are interfaces so that the
// terminal, an SSH session and tests can plug in their own.
package session

import "time"

// Sound identifies a one-shot sound effect.
type Sound string

const (
	SoundCash    Sound = "cash"
	SoundEat     Sound = "eat"
	SoundPurr    Sound = "purr"
	SoundMeow    Sound = "meow"
	SoundLevelUp Sound = "level_up"
)

// Audio plays sound effects and background music.
type Audio interface {
	PlaySound(s Sound)
	PlayLoopingMusic()
	StopMusic()

	// SetMuted silences every sound until unmuted.
	SetMuted(muted bool)
	Muted() bool
}

// Haptics vibrates the device.
type Haptics interface {
	Vibrate(d time.Duration)
}

// Notifier shows system notifications.
type Notifier interface {
	ShowTimerCompleteNotification()

	// ScheduleReminder arranges a single "your cat misses you" reminder after
	// delay, replacing any pending one.
	ScheduleReminder(delay time.Duration)
	CancelReminder()
}

// Services bundles the collaborators of a Coordinator. Nil fields are
// replaced by no-op implementations.
type Services struct {
	Audio    Audio
	Haptics  Haptics
	Notifier Notifier
}

func (s Services) withDefaults() Services {
	if s.Audio == nil {
		s.Audio = &NopAudio{}
	}
	if s.Haptics == nil {
		s.Haptics = NopHaptics{}
	}
	if s.Notifier == nil {
		s.Notifier = NopNotifier{}
	}
	return s
}
