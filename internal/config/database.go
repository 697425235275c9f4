package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNoDatabase = errors.New("no postgres connection configured")

type Database struct {
	Username string `json:"user"`
	Password string `json:"password"`
	Host     string `json:"host"`
	Port     uint16 `json:"port"`
	DBName   string `json:"db_name"`
	SSLMode  string `json:"ssl_mode"`
}

// withEnv overlays the POSTGRES_* env variables that are set on d.
// POSTGRES_PASSWORD_FILE is read when POSTGRES_PASSWORD is absent.
func (d Database) withEnv() (Database, error) {
	for key, field := range map[string]*string{
		"POSTGRES_USER":    &d.Username,
		"POSTGRES_HOST":    &d.Host,
		"POSTGRES_DB":      &d.DBName,
		"POSTGRES_SSLMODE": &d.SSLMode,
	} {
		if value, ok := os.LookupEnv(key); ok {
			*field = value
		}
	}

	if password, ok := os.LookupEnv("POSTGRES_PASSWORD"); ok {
		d.Password = password
	} else if path, ok := os.LookupEnv("POSTGRES_PASSWORD_FILE"); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return d, fmt.Errorf("unable to read from password file: %w", err)
		}
		d.Password = strings.TrimSpace(string(data))
	}

	if portStr, ok := os.LookupEnv("POSTGRES_PORT"); ok {
		port, err := strconv.ParseUint(portStr, 10, 16)
		if err != nil {
			return d, fmt.Errorf("invalid POSTGRES_PORT %q: %w", portStr, err)
		}
		d.Port = uint16(port)
	}

	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	return d, nil
}

func (d Database) URL() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		d.Username,
		url.QueryEscape(d.Password),
		d.Host,
		d.Port,
		d.DBName,
		d.SSLMode,
	)
}

// DbURL is DATABASE_URL when set, otherwise the postgres config section
// with the POSTGRES_* env variables applied on top.
func (c Config) DbURL() (string, error) {
	if dbURL, ok := os.LookupEnv("DATABASE_URL"); ok {
		return dbURL, nil
	}

	db, err := c.Postgres.withEnv()
	if err != nil {
		return "", err
	}
	if db.Host == "" || db.DBName == "" {
		return "", ErrNoDatabase
	}
	return db.URL(), nil
}

func (c Config) NewPgxpoolConfig() (*pgxpool.Config, error) {
	dbURL, err := c.DbURL()
	if err != nil {
		return nil, err
	}
	return pgxpool.ParseConfig(dbURL)
}
