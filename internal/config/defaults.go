package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/savekitty.yaml
var defaultYAML []byte

// DefaultDBPath is where the save file lives unless overridden.
const DefaultDBPath = "~/.savekitty/save.db"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Economy: EconomyConfig{
			StartingBiscuits: 100,
			FishPrice:        5,
			SessionReward:    10,
			TapReward:        1,
		},
		Cat: CatConfig{
			DefaultName:     "Kitty",
			MaxHealth:       10,
			StartingHealth:  5,
			RespawnHealth:   5,
			HungryThreshold: 4,
			FishHeal:        1,
		},
		Decay: DecayConfig{
			Interval: 6 * time.Hour,
		},
		Timer: TimerConfig{
			DefaultDuration:   25 * time.Minute,
			MaxDuration:       120 * time.Minute,
			TickInterval:      time.Second,
			GrantMissedReward: true,
		},
		Reminder: ReminderConfig{
			Delay: 24 * time.Hour,
		},
		Storage: StorageConfig{
			Path:         DefaultDBPath,
			WriteTimeout: 5 * time.Second,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
