package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

type Duration struct{ time.Duration }

// [Duration] implements [json.Marshaler]
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		if err != nil {
			return err
		}
		return nil

	default:
		return errors.New("invalid duration")
	}
}

type Config struct {
	Mode            string   `json:"mode"`
	Addr            string   `json:"addr"`
	LogFile         string   `json:"log_file"`
	SQLitePath      string   `json:"sqlite_path"`
	Seed            uint64   `json:"seed"`
	ShutdownTimeout Duration `json:"shutdown_timeout"`
	Postgres        Database `json:"postgres"`
}

func Default() *Config {
	return &Config{
		Mode:            "development",
		Addr:            ":8080",
		SQLitePath:      "minefield.db",
		ShutdownTimeout: Duration{15 * time.Second},
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":             c.Mode,
		"addr":             c.Addr,
		"log_file":         c.LogFile,
		"sqlite_path":      c.SQLitePath,
		"seed":             c.Seed,
		"shutdown_timeout": c.ShutdownTimeout.String(),
		"pg_host":          c.Postgres.Host,
		"pg_port":          c.Postgres.Port,
		"pg_user":          c.Postgres.Username,
		"pg_db_name":       c.Postgres.DBName,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

// Development is true unless the mode is "production" or the DEVELOPMENT
// env variable is set to "0".
func (c Config) Development() bool {
	if development, ok := os.LookupEnv("DEVELOPMENT"); ok {
		return development != "0"
	}
	return !c.Production()
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return fmt.Errorf("unable to read config %s: %w", path, err)
	} else if err := json.Unmarshal(b, config); err != nil {
		return fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	return nil
}

// Load reads the config at path on top of [Default]. A missing file is not
// an error when path is the default one.
func Load(path string, isDefault bool) (*Config, error) {
	config := Default()
	err := ReadConfig(path, config)
	if err != nil && isDefault && errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	return config, err
}

// ListenAddr is Addr unless overridden by the APP_PORT env variable.
func (c Config) ListenAddr() string {
	if port, ok := os.LookupEnv("APP_PORT"); ok {
		return port
	}
	return c.Addr
}
