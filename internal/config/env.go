package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names read by the connector.
const (
	EnvDBName     = "DB_NAME"
	EnvDBUsername = "DB_USERNAME"
	EnvDBPassword = "DB_PASSWORD"
	EnvDBHost     = "DB_HOST"
	EnvDBPort     = "DB_PORT"
)

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// A missing file is not an error. Variables already present in the
// environment win over the file.
func LoadEnvFile(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("load env file %s: %w", path, err)
	}
	return true, nil
}

// DBFromEnv reads the connection settings from the process environment.
// Nothing is validated; unset variables come back as empty strings.
func DBFromEnv() DBConfig {
	return DBConfig{
		Name:     os.Getenv(EnvDBName),
		User:     os.Getenv(EnvDBUsername),
		Password: os.Getenv(EnvDBPassword),
		Host:     os.Getenv(EnvDBHost),
		Port:     os.Getenv(EnvDBPort),
	}
}
