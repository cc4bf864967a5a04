package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config with defaults: %v", err)
	}

	if cfg.Database.Path != "./data/spotify_history.db" {
		t.Errorf("Expected default database path, got %q", cfg.Database.Path)
	}
	if cfg.Database.MigrationsPath != "./migrations" {
		t.Errorf("Expected default migrations path, got %q", cfg.Database.MigrationsPath)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default log level info, got %q", cfg.Logging.Level)
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Path: "", MigrationsPath: "./migrations"},
		Logging:  LoggingConfig{Level: "verbose", Format: "text"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation to fail")
	}
}
