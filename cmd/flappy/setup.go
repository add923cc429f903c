package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/storage"
)

// defaultLogFile keeps terminal hosts from writing over the alt screen.
const defaultLogFile = "~/.flappy/flappy.log"

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

// newLogger creates the command logger. An empty path logs to stderr.
// The returned closer releases the log file, if any.
func newLogger(path, prefix string) (*log.Logger, io.Closer, error) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.InfoLevel,
	}
	if flagDebug {
		opts.Level = log.DebugLevel
	}

	if path == "" {
		return log.NewWithOptions(os.Stderr, opts), io.NopCloser(nil), nil
	}

	path, err := expandHome(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot expand log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return log.NewWithOptions(f, opts), f, nil
}

// loadGameConfig loads the YAML config and applies the selected preset.
// It returns the config before and after the preset so menus can switch
// boards later.
func loadGameConfig() (base, cfg config.Config, preset config.Preset, err error) {
	preset, err = config.ParsePreset(flagPreset)
	if err != nil {
		return base, cfg, preset, err
	}

	base, err = config.Load(flagConfig)
	if err != nil {
		return base, cfg, preset, err
	}

	cfg = base
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return base, cfg, preset, err
	}
	return base, cfg, preset, nil
}

// loadSprites decodes the three sprites. Any failure is fatal to the caller.
func loadSprites(cfg config.Config) (*assets.Set, error) {
	return assets.LoadDir(flagAssets, cfg.Assets)
}

// openStore opens score storage. Storage is optional: on failure the game
// runs without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		return nil
	}
	return store
}

// playerName returns the --player flag or the login name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// terminalRuntime builds the runtime config from the terminal size.
func terminalRuntime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
