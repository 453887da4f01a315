package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"pokermaster-server/internal/util"
)

// Config provides configuration for the poker master server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	Addr           string `yaml:"addr" envconfig:"addr"`
	Log            struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Table struct {
		StartingCash int `yaml:"startingCash" envconfig:"starting_cash"`
		SmallBlind   int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind     int `yaml:"bigBlind" envconfig:"big_blind"`
	} `yaml:"table"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var c Config
	c.PGDSN = "postgres://postgres@localhost:5432/postgres?sslmode=disable"
	c.MigrationsPath = "./sql"
	c.Addr = ":5000"
	c.Log.Level = "info"
	c.Table.StartingCash = 1000
	c.Table.SmallBlind = 10
	c.Table.BigBlind = 20

	return c
}

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
// Values come from the defaults, then the YAML file, then the environment. A missing file is not an error.
func Load() error {
	c := DefaultConfig()

	configFile := util.Getenv("PMS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&c); err != nil {
			return err
		}
	}

	if err := envconfig.Process("pms", &c); err != nil {
		return err
	}

	c.loaded = true
	config = c
	return nil
}
