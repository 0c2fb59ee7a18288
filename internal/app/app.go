package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/five82/tock/internal/chime"
	"github.com/five82/tock/internal/clock"
	"github.com/five82/tock/internal/config"
	"github.com/five82/tock/internal/kv"
	"github.com/five82/tock/internal/logging"
	"github.com/five82/tock/internal/prefs"
	"github.com/five82/tock/internal/todo"
	"github.com/five82/tock/internal/ui"
)

var _ clock.Attribution = (*todo.List)(nil)

// Options configure the tock application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/tock/prefs.toml
	Debug      bool
}

// Run boots the tock TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	level := logging.LevelInfo
	if opts.Debug {
		level = logging.LevelDebug
	}
	logger, logFile, err := logging.OpenFile(cfg.LogFile, level)
	if err != nil {
		return err
	}
	defer logFile.Close()
	slog.SetDefault(logger.Logger)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	store, err := kv.Open(cfg.DatabasePath())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	restored := restoreClock(ctx, store, userPrefs, logger.WithComponent("app").Logger)
	logger.Info("tock starting",
		"remaining", restored.Remaining,
		"mode", restored.Mode.String(),
		"db", cfg.DatabasePath(),
	)

	tasks := todo.NewList()

	var player chime.Player = chime.Silent{}
	if !userPrefs.Mute {
		sp := chime.NewSpeaker(logger.WithComponent("chime").Logger)
		defer sp.Close()
		player = sp
	}

	engine := clock.New(clock.Options{
		Initial:     restored.Remaining,
		Mode:        restored.Mode,
		Attribution: tasks,
		OnFinish:    func(clock.Snapshot) { player.Play() },
		Logger:      logger.WithComponent("clock").Logger,
	})

	saverCtx, stopSaver := context.WithCancel(ctx)
	saverDone := StartSaver(saverCtx, engine, store, cfg.SaveEvery, logger.WithComponent("saver").Logger)

	uiErr := ui.Run(ui.Options{
		Context:   ctx,
		Clock:     engine,
		Tasks:     tasks,
		Refresh:   cfg.Refresh,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		Logger:    logger.WithComponent("ui").Logger,
	})

	engine.Close()
	stopSaver()
	<-saverDone

	logger.Info("tock stopped")
	return uiErr
}

// restoreClock reads the persisted clock. A missing quantity falls back to the
// preferred default duration; read failures are logged and treated as empty.
func restoreClock(ctx context.Context, store *kv.Store, p prefs.Prefs, logger *slog.Logger) clock.Snapshot {
	snap := clock.Snapshot{
		Remaining: clock.ParseOrZero(p.DefaultDuration),
		Mode:      clock.ParseMode(p.Mode),
	}

	remaining, err := store.GetInt(ctx, keyRemaining)
	switch {
	case err == nil:
		snap.Remaining = remaining
	case errors.Is(err, kv.ErrNotFound):
	default:
		logger.Warn("restore remaining failed", "error", err)
	}

	mode, err := store.Get(ctx, keyMode)
	switch {
	case err == nil:
		snap.Mode = clock.ParseMode(mode)
	case errors.Is(err, kv.ErrNotFound):
	default:
		logger.Warn("restore mode failed", "error", err)
	}

	return snap
}
