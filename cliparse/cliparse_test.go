// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("ADMIN_KEY_SALT", "test-salt")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-admin-salt", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_SqliteDefaults(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-admin-salt", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite default, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL == "" {
		t.Error("expected a default sqlite database path")
	}
	if cfg.IPHashSalt != "s1" {
		t.Errorf("IP hash salt should fall back to admin salt, got %s", cfg.IPHashSalt)
	}
}

func TestParseFlags_MissingSalt(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error when ADMIN_KEY_SALT is missing")
	}
}

func TestParseFlags_BadDatabaseType(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "mysql", "-admin-salt", "s1"}); err == nil {
		t.Error("expected error for unsupported database type")
	}
}
