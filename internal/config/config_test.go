package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{DSN: "postgres://u:p@localhost:5432/testdb", MaxConns: 4, MinConns: 1},
		Log:      LogConfig{Level: "info", Format: "json"},
		Check:    CheckConfig{SamplesRaw: "CaFeBaBe", Timeout: time.Second},
	}
}

const validYAML = `
database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

log:
  level: "debug"
  format: "text"

check:
  samples: "Alpha, BETA ,,gamma"
  timeout: "5s"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Database.DSN != "postgres://u:p@localhost:5432/testdb" {
		t.Errorf("database.dsn = %q", cfg.Database.DSN)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}
	if cfg.Database.MaxConnLifetime != time.Hour {
		t.Errorf("database.max_conn_lifetime = %v, want default 1h", cfg.Database.MaxConnLifetime)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}
	if cfg.Check.Timeout != 5*time.Second {
		t.Errorf("check.timeout = %v, want 5s", cfg.Check.Timeout)
	}
	if want := []string{"Alpha", "BETA", "gamma"}; !slices.Equal(cfg.Check.Samples, want) {
		t.Errorf("check.samples = %q, want %q", cfg.Check.Samples, want)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("CHECK_SAMPLES", "Ωmega")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !slices.Equal(cfg.Check.Samples, []string{"Ωmega"}) {
		t.Errorf("check.samples = %q, want ENV override", cfg.Check.Samples)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := []string{"CaFeBaBe", "Straße", "ÀÉÎÕÜ"}; !slices.Equal(cfg.Check.Samples, want) {
		t.Errorf("check.samples = %q, want defaults %q", cfg.Check.Samples, want)
	}
	if cfg.Check.Timeout != 30*time.Second {
		t.Errorf("check.timeout = %v, want 30s (default)", cfg.Check.Timeout)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q, want json (default)", cfg.Log.Format)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty dsn", mutate: func(c *Config) { c.Database.DSN = "  " }, wantErr: true},
		{name: "max below min", mutate: func(c *Config) { c.Database.MaxConns = 0 }, wantErr: true},
		{name: "unknown log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: true},
		{name: "uppercase log format", mutate: func(c *Config) { c.Log.Format = "TEXT" }},
		{name: "zero timeout", mutate: func(c *Config) { c.Check.Timeout = 0 }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.Check.Timeout = -time.Second }, wantErr: true},
		{name: "no samples", mutate: func(c *Config) { c.Check.SamplesRaw = " , ," }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want []string
	}{
		{raw: "", want: []string{}},
		{raw: "One", want: []string{"One"}},
		{raw: " One , tWo ,", want: []string{"One", "tWo"}},
		{raw: ",,", want: []string{}},
	}
	for _, tt := range tests {
		if got := ParseSamples(tt.raw); !slices.Equal(got, tt.want) {
			t.Errorf("ParseSamples(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
