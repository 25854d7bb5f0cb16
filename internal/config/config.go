package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "daygrid.db"
	DefaultSlotKey        = "daygrid_tasks_v1"
)

type Keymap struct {
	Quit       string `toml:"quit"`
	Calendar   string `toml:"calendar"`
	Day        string `toml:"day"`
	Toggle     string `toml:"toggle"`
	Delete     string `toml:"delete"`
	Clear      string `toml:"clear"`
	Editor     string `toml:"editor"`
	Help       string `toml:"help"`
	PrevMonth  string `toml:"prev_month"`
	NextMonth  string `toml:"next_month"`
	SelectCell string `toml:"select_cell"`
}

type Config struct {
	DBPath  string `toml:"db_path"`
	SlotKey string `toml:"slot_key"`
	LogFile string `toml:"log_file"`
	Keys    Keymap `toml:"keys"`
}

// LoadOrCreate reads the config file, writing defaults on first run.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	if cfg.SlotKey == "" {
		cfg.SlotKey = DefaultSlotKey
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DBPath:  DefaultDBName,
		SlotKey: DefaultSlotKey,
		Keys: Keymap{
			Quit:       "q",
			Calendar:   "2",
			Day:        "1",
			Toggle:     " ",
			Delete:     "x",
			Clear:      "C",
			Editor:     "e",
			Help:       "?",
			PrevMonth:  "h",
			NextMonth:  "l",
			SelectCell: "enter",
		},
	}
}
