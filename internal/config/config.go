// Package config provides YAML-based game tuning for savekitty: economy,
// cat vitals, decay pacing, timer defaults and storage location.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains every tunable of the game core.
type Config struct {
	Economy  EconomyConfig  `yaml:"economy"`
	Cat      CatConfig      `yaml:"cat"`
	Decay    DecayConfig    `yaml:"decay"`
	Timer    TimerConfig    `yaml:"timer"`
	Reminder ReminderConfig `yaml:"reminder"`
	Storage  StorageConfig  `yaml:"storage"`
}

// EconomyConfig defines prices and rewards, in biscuits.
type EconomyConfig struct {
	StartingBiscuits int `yaml:"starting_biscuits"`
	FishPrice        int `yaml:"fish_price"`
	SessionReward    int `yaml:"session_reward"`
	TapReward        int `yaml:"tap_reward"`
}

// CatConfig defines health bounds in half-heart units.
type CatConfig struct {
	DefaultName     string `yaml:"default_name"`
	MaxHealth       int    `yaml:"max_health"`
	StartingHealth  int    `yaml:"starting_health"`
	RespawnHealth   int    `yaml:"respawn_health"`
	HungryThreshold int    `yaml:"hungry_threshold"` // health at or below this shows the hungry pose
	FishHeal        int    `yaml:"fish_heal"`
}

// DecayConfig defines idle health loss.
type DecayConfig struct {
	Interval time.Duration `yaml:"interval"` // one half-heart lost per interval away
}

// TimerConfig defines the focus timer.
type TimerConfig struct {
	DefaultDuration   time.Duration `yaml:"default_duration"`
	MaxDuration       time.Duration `yaml:"max_duration"` // longest session that can be selected
	TickInterval      time.Duration `yaml:"tick_interval"`
	GrantMissedReward bool          `yaml:"grant_missed_reward"` // reward sessions that ended while closed
}

// ReminderConfig defines the "your cat misses you" notification.
type ReminderConfig struct {
	Delay time.Duration `yaml:"delay"`
}

// StorageConfig defines where the save file lives.
type StorageConfig struct {
	Path         string        `yaml:"path"`
	WriteTimeout time.Duration `yaml:"write_timeout"` // bound on one background save
}

// Validate checks that the config is playable.
func (c Config) Validate() error {
	var errs []error

	if c.Economy.StartingBiscuits < 0 {
		errs = append(errs, fmt.Errorf("economy.starting_biscuits must be >= 0, got %d", c.Economy.StartingBiscuits))
	}
	if c.Economy.FishPrice <= 0 {
		errs = append(errs, fmt.Errorf("economy.fish_price must be > 0, got %d", c.Economy.FishPrice))
	}
	if c.Economy.SessionReward < 0 || c.Economy.TapReward < 0 {
		errs = append(errs, errors.New("economy rewards must be >= 0"))
	}
	if c.Cat.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("cat.max_health must be > 0, got %d", c.Cat.MaxHealth))
	}
	if c.Cat.StartingHealth < 0 || c.Cat.StartingHealth > c.Cat.MaxHealth {
		errs = append(errs, fmt.Errorf("cat.starting_health must be in [0,%d], got %d", c.Cat.MaxHealth, c.Cat.StartingHealth))
	}
	if c.Cat.RespawnHealth <= 0 || c.Cat.RespawnHealth > c.Cat.MaxHealth {
		errs = append(errs, fmt.Errorf("cat.respawn_health must be in [1,%d], got %d", c.Cat.MaxHealth, c.Cat.RespawnHealth))
	}
	if c.Cat.FishHeal <= 0 {
		errs = append(errs, fmt.Errorf("cat.fish_heal must be > 0, got %d", c.Cat.FishHeal))
	}
	if c.Decay.Interval <= 0 {
		errs = append(errs, fmt.Errorf("decay.interval must be > 0, got %s", c.Decay.Interval))
	}
	if c.Timer.DefaultDuration < time.Minute {
		errs = append(errs, fmt.Errorf("timer.default_duration must be at least 1m, got %s", c.Timer.DefaultDuration))
	}
	if c.Timer.MaxDuration < c.Timer.DefaultDuration || c.Timer.MaxDuration > 24*time.Hour {
		errs = append(errs, fmt.Errorf("timer.max_duration must be in [default_duration,24h], got %s", c.Timer.MaxDuration))
	}
	if c.Timer.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("timer.tick_interval must be > 0, got %s", c.Timer.TickInterval))
	}
	if c.Storage.WriteTimeout <= 0 {
		errs = append(errs, fmt.Errorf("storage.write_timeout must be > 0, got %s", c.Storage.WriteTimeout))
	}
	if c.Reminder.Delay <= 0 {
		errs = append(errs, fmt.Errorf("reminder.delay must be > 0, got %s", c.Reminder.Delay))
	}

	return errors.Join(errs...)
}
