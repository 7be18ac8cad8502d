package config

import (
	"os"
	"time"

	"tarneeb-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the tarneeb server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	JWT            struct {
		Secret string `yaml:"secret"`
		// TicketTTL is how long a seat ticket can be used to connect, in seconds
		TicketTTL int `yaml:"ticketTTL" envconfig:"ticket_ttl"`
	}
	Game struct {
		// SettleDelay is in milliseconds
		SettleDelay int `yaml:"settleDelay" envconfig:"settle_delay"`
		// RoundPause is in milliseconds
		RoundPause int `yaml:"roundPause" envconfig:"round_pause"`
	}
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	}
	Log struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
}

// SettleDelay returns the trick settle delay as a duration
func (c Config) SettleDelay() time.Duration {
	return time.Duration(c.Game.SettleDelay) * time.Millisecond
}

// RoundPause returns the pause between rounds as a duration
func (c Config) RoundPause() time.Duration {
	return time.Duration(c.Game.RoundPause) * time.Millisecond
}

// TicketTTL returns how long a seat ticket is valid for
func (c Config) TicketTTL() time.Duration {
	return time.Duration(c.JWT.TicketTTL) * time.Second
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	var cfg Config
	cfg.PGDSN = ""
	cfg.MigrationsPath = "./sql"
	cfg.JWT.Secret = ""
	cfg.JWT.TicketTTL = 60
	cfg.Game.SettleDelay = 3000
	cfg.Game.RoundPause = 5000
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.Log.Level = "info"

	return cfg
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("TARNEEB_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	} else {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("tarneeb", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
