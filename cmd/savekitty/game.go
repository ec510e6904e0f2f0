package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/savekitty/internal/config"
	"github.com/vovakirdan/savekitty/internal/gamestate"
	"github.com/vovakirdan/savekitty/internal/session"
	"github.com/vovakirdan/savekitty/internal/storage"
)

const closeTimeout = 5 * time.Second

// game is one cold start: config, save file and store.
type game struct {
	cfg    config.Config
	logger *log.Logger
	kv     storage.KV
	store  *gamestate.Store
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "savekitty",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openGame loads config, opens the save file and catches the store up to now.
// If the database cannot be opened the game continues in memory.
func openGame(ctx context.Context) (*game, error) {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	kv, err := openKV(cfg, logger)
	if err != nil {
		logger.Warn("could not open save file, progress will not be kept", "path", cfg.Storage.Path, "error", err)
		kv = storage.NewMemory()
	}

	store, err := gamestate.New(ctx, kv,
		gamestate.WithConfig(cfg),
		gamestate.WithLogger(logger),
		gamestate.WithWriterConfig(storage.WriterConfig{
			WriteTimeout: cfg.Storage.WriteTimeout,
			Logger:       logger.WithPrefix("savekitty-save"),
		}),
	)
	if err != nil {
		kv.Close()
		return nil, err
	}

	return &game{cfg: cfg, logger: logger, kv: kv, store: store}, nil
}

// loadConfig reads the tuning file and applies the --db override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, nil
}

// openKV opens the save file without loading the game.
func openKV(cfg config.Config, logger *log.Logger) (storage.KV, error) {
	db, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("save file opened", "path", db.Path())
	return db, nil
}

// Close flushes pending writes and releases the save file.
func (g *game) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	return errors.Join(g.store.Close(ctx), g.kv.Close())
}

// coordinator builds a session for this process. Console adapters stand in
// for audio and notifications.
func (g *game) coordinator() *session.Coordinator {
	cfg := session.DefaultConfig()
	cfg.Logger = g.logger
	cfg.ReminderDelay = g.cfg.Reminder.Delay

	return session.New(g.store, session.Services{
		Audio:    session.NewTerminalAudio(os.Stdout, g.logger),
		Haptics:  session.LogHaptics{Logger: g.logger},
		Notifier: session.NewLogNotifier(g.logger, nil),
	}, cfg)
}

// withGame runs fn against a freshly opened game and always closes it.
func withGame(fn func(g *game) error) error {
	g, err := openGame(context.Background())
	if err != nil {
		return fmt.Errorf("cannot open game: %w", err)
	}
	return errors.Join(fn(g), g.Close())
}

// runGame is withGame for one-shot commands: it reports what happened while
// the app was closed before running fn.
func runGame(fn func(g *game) error) error {
	return withGame(func(g *game) error {
		reportStartup(g)
		return fn(g)
	})
}

// reportStartup prints events raised while catching up, such as a focus
// session that ended while the app was closed.
func reportStartup(g *game) {
	for _, ev := range g.store.DrainStartupEvents() {
		switch e := ev.(type) {
		case gamestate.TimerCompleted:
			if e.Reward > 0 {
				fmt.Printf("A %d minute focus session finished while you were away: +%d biscuits\n", e.Minutes, e.Reward)
			} else {
				fmt.Printf("A %d minute focus session finished while you were away.\n", e.Minutes)
			}
		case gamestate.HealthDepleted:
			fmt.Println("Your cat got too hungry while you were away...")
		}
	}
}
