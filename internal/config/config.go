package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration. Everything comes from the
// environment (or a .env file loaded before GetConfig runs).
type Config struct {
	Port  string
	DbDSN string

	// CORSOrigins is the comma-separated allow list for the dashboard
	// origin(s). Empty means allow all, which is only sensible in dev.
	CORSOrigins []string

	// StrictTransitions turns on the guarded status state machine. Off by
	// default: the product currently allows any status to move anywhere.
	StrictTransitions bool

	// ClampPages pulls a table's current page back into range when the data
	// set shrinks. Off by default to match the existing dashboard behavior.
	ClampPages bool
}

var once sync.Once
var config *Config

// GetConfig loads the configuration once per process.
func GetConfig() (*Config, error) {
	var err error
	once.Do(func() {
		config, err = loadConfig()
	})
	return config, err
}

func loadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("STRICT_TRANSITIONS", false)
	v.SetDefault("CLAMP_PAGES", false)

	cfg := &Config{
		Port:              v.GetString("PORT"),
		DbDSN:             v.GetString("DB_DSN"),
		StrictTransitions: v.GetBool("STRICT_TRANSITIONS"),
		ClampPages:        v.GetBool("CLAMP_PAGES"),
	}

	if origins := v.GetString("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if cfg.DbDSN == "" {
		return nil, fmt.Errorf("required environment variable DB_DSN is missing")
	}
	return cfg, nil
}
