package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvFile(t *testing.T) {
	// Registered so t.Setenv restores them after godotenv writes.
	for _, k := range []string{EnvDBName, EnvDBUsername, EnvDBPassword, EnvDBHost, EnvDBPort} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Setenv(EnvDBHost, "already-set")

	path := writeTempFile(t, ".env", `DB_NAME=billing
DB_USERNAME=etl
DB_PASSWORD="p@ss word"
DB_HOST=from-file
DB_PORT=5433
`)

	loaded, err := LoadEnvFile(path)
	if err != nil {
		t.Fatalf("LoadEnvFile failed: %v", err)
	}
	if !loaded {
		t.Fatal("LoadEnvFile reported file not loaded")
	}

	got := DBFromEnv()
	want := DBConfig{
		Name:     "billing",
		User:     "etl",
		Password: "p@ss word",
		Host:     "already-set",
		Port:     "5433",
	}
	if got != want {
		t.Errorf("DBFromEnv() = %+v, want %+v", got, want)
	}
}

func TestLoadEnvFileMissing(t *testing.T) {
	loaded, err := LoadEnvFile(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("LoadEnvFile on missing file: %v", err)
	}
	if loaded {
		t.Error("LoadEnvFile reported a missing file as loaded")
	}
}

func TestLoadEnvFileEmptyPath(t *testing.T) {
	loaded, err := LoadEnvFile("")
	if err != nil || loaded {
		t.Errorf("LoadEnvFile(\"\") = %v, %v; want false, nil", loaded, err)
	}
}

func TestDBFromEnvUnset(t *testing.T) {
	for _, k := range []string{EnvDBName, EnvDBUsername, EnvDBPassword, EnvDBHost, EnvDBPort} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	if got := DBFromEnv(); got != (DBConfig{}) {
		t.Errorf("DBFromEnv() = %+v, want zero value", got)
	}
}
