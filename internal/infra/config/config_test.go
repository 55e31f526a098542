package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/reminders")
	t.Setenv("PUSH_GATEWAY_URL", "http://localhost:9090")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("CRON_SPEC_TICK", "")
	t.Setenv("RUN_TIMEOUT_SECONDS", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("USER_WORKERS", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ENVIRONMENT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CronSpecTick != "* * * * *" {
		t.Errorf("got tick spec %q", cfg.CronSpecTick)
	}
	if cfg.RunTimeout != 120*time.Second {
		t.Errorf("got run timeout %v", cfg.RunTimeout)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("got timezone %q", cfg.Timezone)
	}
	if cfg.UserWorkers != 4 {
		t.Errorf("got user workers %d", cfg.UserWorkers)
	}
	if cfg.LogLevel != "info" || cfg.Environment != "development" {
		t.Errorf("got log level %q, environment %q", cfg.LogLevel, cfg.Environment)
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PUSH_GATEWAY_URL", "http://localhost:9090")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}
}

func TestLoad_MissingGatewayURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/reminders")
	t.Setenv("PUSH_GATEWAY_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when PUSH_GATEWAY_URL is missing")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	setRequired(t)

	t.Setenv("RUN_TIMEOUT_SECONDS", "abc")
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid RUN_TIMEOUT_SECONDS")
	}
	t.Setenv("RUN_TIMEOUT_SECONDS", "60")

	t.Setenv("USER_WORKERS", "0")
	if _, err := Load(); err == nil {
		t.Error("expected error for USER_WORKERS below 1")
	}
	t.Setenv("USER_WORKERS", "8")

	t.Setenv("TIMEZONE", "Not/AZone")
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid TIMEZONE")
	}
}

func TestLoad_Location(t *testing.T) {
	setRequired(t)
	t.Setenv("TIMEZONE", "Europe/Moscow")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Location().String() != "Europe/Moscow" {
		t.Errorf("got location %s", cfg.Location())
	}
}
