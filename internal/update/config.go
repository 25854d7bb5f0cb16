package update

import (
	"os"
	"strings"

	"github.com/sandeepkv93/daygrid/internal/config"
)

// ApplyEnvOverrides layers DAYGRID_* environment variables over the file
// config, mirroring how flags would behave without needing a CLI surface.
func ApplyEnvOverrides(cfg config.Config) config.Config {
	if v, ok := getEnv("DAYGRID_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnv("DAYGRID_SLOT_KEY"); ok {
		cfg.SlotKey = v
	}
	if v, ok := getEnv("DAYGRID_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	return cfg
}

func getEnv(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}
