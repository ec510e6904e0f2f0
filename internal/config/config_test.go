package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Economy.StartingBiscuits != 100 {
		t.Fatalf("StartingBiscuits: expected 100 got %d", cfg.Economy.StartingBiscuits)
	}
	if cfg.Economy.FishPrice != 5 {
		t.Fatalf("FishPrice: expected 5 got %d", cfg.Economy.FishPrice)
	}
	if cfg.Economy.SessionReward != 10 {
		t.Fatalf("SessionReward: expected 10 got %d", cfg.Economy.SessionReward)
	}
	if cfg.Cat.MaxHealth != 10 || cfg.Cat.StartingHealth != 5 {
		t.Fatalf("unexpected cat health bounds: %+v", cfg.Cat)
	}
	if cfg.Decay.Interval != 6*time.Hour {
		t.Fatalf("Decay.Interval: expected 6h got %s", cfg.Decay.Interval)
	}
	if cfg.Timer.DefaultDuration != 25*time.Minute {
		t.Fatalf("Timer.DefaultDuration: expected 25m got %s", cfg.Timer.DefaultDuration)
	}
	if cfg.Timer.MaxDuration != 120*time.Minute {
		t.Fatalf("Timer.MaxDuration: expected 120m got %s", cfg.Timer.MaxDuration)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML and Default() disagree:\n yaml: %+v\n code: %+v", cfg, Default())
	}
}

func TestParsePartialOverlay(t *testing.T) {
	cfg, err := Parse([]byte("economy:\n  fish_price: 7\ndecay:\n  interval: 3h\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Economy.FishPrice != 7 {
		t.Errorf("FishPrice: expected 7 got %d", cfg.Economy.FishPrice)
	}
	if cfg.Decay.Interval != 3*time.Hour {
		t.Errorf("Decay.Interval: expected 3h got %s", cfg.Decay.Interval)
	}
	// Untouched keys keep their defaults.
	if cfg.Economy.StartingBiscuits != 100 {
		t.Errorf("StartingBiscuits: expected default 100 got %d", cfg.Economy.StartingBiscuits)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero fish price", "economy:\n  fish_price: 0\n", "fish_price"},
		{"negative decay", "decay:\n  interval: -1h\n", "decay.interval"},
		{"tiny timer", "timer:\n  default_duration: 10s\n", "default_duration"},
		{"max below default", "timer:\n  max_duration: 10m\n", "max_duration"},
		{"zero write timeout", "storage:\n  write_timeout: 0s\n", "write_timeout"},
		{"starting health above max", "cat:\n  starting_health: 11\n", "starting_health"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("economy:\n  session_reward: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Economy.SessionReward != 25 {
		t.Errorf("SessionReward: expected 25 got %d", cfg.Economy.SessionReward)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}
