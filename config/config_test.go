package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_DRIVER", "DATABASE_URL", "DB_CONNECT_TIMEOUT_SECONDS", "DB_MAX_OPEN_CONNS",
		"SERVER_PORT", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW_SECONDS",
		"R2_ACCOUNT_ID", "R2_ACCESS_KEY_ID", "R2_SECRET_ACCESS_KEY", "R2_BUCKET_NAME", "R2_PUBLIC_BASE_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/tournament")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabaseDriver != DriverPostgres {
		t.Errorf("DatabaseDriver = %q; want %q", cfg.DatabaseDriver, DriverPostgres)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d; want 8080", cfg.ServerPort)
	}
	if cfg.DBConnectTimeout != 5*time.Second {
		t.Errorf("DBConnectTimeout = %v; want 5s", cfg.DBConnectTimeout)
	}
	if cfg.RateLimitWindow != time.Minute {
		t.Errorf("RateLimitWindow = %v; want 1m", cfg.RateLimitWindow)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Errorf("CORSAllowedOrigins = %v; want [*]", cfg.CORSAllowedOrigins)
	}
	if cfg.ExportEnabled() {
		t.Error("ExportEnabled = true; want false without R2 settings")
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing database url", env: map[string]string{}},
		{name: "unknown driver", env: map[string]string{"DATABASE_URL": "x", "DB_DRIVER": "mysql"}},
		{name: "port not a number", env: map[string]string{"DATABASE_URL": "x", "SERVER_PORT": "http"}},
		{name: "port out of range", env: map[string]string{"DATABASE_URL": "x", "SERVER_PORT": "70000"}},
		{name: "zero rate window", env: map[string]string{"DATABASE_URL": "x", "RATE_LIMIT_WINDOW_SECONDS": "0"}},
		{name: "partial r2 settings", env: map[string]string{"DATABASE_URL": "x", "R2_BUCKET_NAME": "snapshots"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range c.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Errorf("%s: Load succeeded; want error", c.name)
			}
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "/tmp/tournament.db")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, ,http://b.example")
	t.Setenv("R2_ACCOUNT_ID", "acct")
	t.Setenv("R2_ACCESS_KEY_ID", "key")
	t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
	t.Setenv("R2_BUCKET_NAME", "bucket")
	t.Setenv("R2_PUBLIC_BASE_URL", "https://cdn.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabaseDriver != DriverSQLite {
		t.Errorf("DatabaseDriver = %q; want %q", cfg.DatabaseDriver, DriverSQLite)
	}
	if cfg.ServerPort != 9090 {
		t.Errorf("ServerPort = %d; want 9090", cfg.ServerPort)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Errorf("CORSAllowedOrigins = %v; want 2 entries", cfg.CORSAllowedOrigins)
	}
	if !cfg.ExportEnabled() {
		t.Error("ExportEnabled = false; want true with all R2 settings")
	}
}
