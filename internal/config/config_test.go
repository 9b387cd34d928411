package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("driver = %q", cfg.Database.Driver)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("token ttl = %v", cfg.Auth.TokenTTL)
	}
	if cfg.CacheEnabled() {
		t.Error("cache should be disabled without redis.url")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TRIPLEDGER_SERVER_PORT", "9090")
	t.Setenv("TRIPLEDGER_DATABASE_DRIVER", "postgres")
	t.Setenv("TRIPLEDGER_DATABASE_URL", "postgres://localhost/trips")
	t.Setenv("TRIPLEDGER_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("TRIPLEDGER_AUTH_TOKEN_TTL", "2h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverPostgres || cfg.Database.URL != "postgres://localhost/trips" {
		t.Errorf("database = %+v", cfg.Database)
	}
	if !cfg.CacheEnabled() {
		t.Error("cache should be enabled")
	}
	if cfg.Auth.TokenTTL != 2*time.Hour {
		t.Errorf("token ttl = %v", cfg.Auth.TokenTTL)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tripledger.yaml")
	content := `
server:
  port: 7000
ledger:
  settlement_currency: JPY
log:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TRIPLEDGER_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("port = %d, want 7000", cfg.Server.Port)
	}
	if cfg.Ledger.SettlementCurrency != "JPY" {
		t.Errorf("settlement currency = %q", cfg.Ledger.SettlementCurrency)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("TRIPLEDGER_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Driver: DriverSQLite, Path: "x.db"},
			Auth:     AuthConfig{JWTSecret: "s", TokenTTL: time.Hour},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, true},
		{"postgres without url", func(c *Config) { c.Database.Driver = DriverPostgres }, true},
		{"sqlite without path", func(c *Config) { c.Database.Path = "" }, true},
		{"empty secret", func(c *Config) { c.Auth.JWTSecret = "" }, true},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, true},
		{"zero ttl", func(c *Config) { c.Auth.TokenTTL = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
