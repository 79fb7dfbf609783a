// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseURL != DefaultDatabaseURL {
		t.Errorf("expected default database URL, got %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite default, got %q", cfg.DatabaseType)
	}
	if cfg.QRSizePx != DefaultQRSizePx {
		t.Errorf("expected QR size %d, got %d", DefaultQRSizePx, cfg.QRSizePx)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("HOLD_MS", "2500")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseURL != "postgres://test" {
		t.Errorf("expected env database URL, got %q", cfg.DatabaseURL)
	}
	if cfg.HoldMillis != 2500 {
		t.Errorf("expected hold 2500, got %d", cfg.HoldMillis)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("DATABASE_URL", "env.db")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-d", "flag.db", "-u", "https://example.com/?room=123456A"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.DatabaseURL != "flag.db" {
		t.Errorf("CLI should override env: expected flag.db, got %q", cfg.DatabaseURL)
	}
	if cfg.Locator != "https://example.com/?room=123456A" {
		t.Errorf("unexpected locator %q", cfg.Locator)
	}
}

func TestParseFlags_RejectsUnknownDatabaseType(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "mysql"}); err == nil {
		t.Fatal("expected error for unsupported database type")
	}
}
