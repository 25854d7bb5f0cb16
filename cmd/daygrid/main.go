package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/sandeepkv93/daygrid/internal/config"
	"github.com/sandeepkv93/daygrid/internal/storage"
	"github.com/sandeepkv93/daygrid/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "daygrid failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dir, err := configDir()
	if err != nil {
		return err
	}

	cfg, err := config.LoadOrCreate(filepath.Join(dir, config.DefaultConfigFileName))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = update.ApplyEnvOverrides(cfg)

	log, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	dbPath := cfg.DBPath
	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(dir, dbPath)
	}
	slot, err := storage.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer slot.Close()

	model := update.OpenStore(slot, cfg.SlotKey, cfg.Keys, log, time.Now())
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "daygrid"), nil
}

// newLogger writes JSON log lines to the configured file. With no file
// configured logs are discarded; stdout belongs to the TUI.
func newLogger(file string) (zerolog.Logger, func(), error) {
	closer := func() {}
	if file == "" {
		return zerolog.New(io.Discard), closer, nil
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return zerolog.Logger{}, closer, err
	}
	f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Logger{}, closer, err
	}
	closer = func() { _ = f.Close() }

	log := zerolog.New(f).With().Timestamp().Logger()
	return log, closer, nil
}
