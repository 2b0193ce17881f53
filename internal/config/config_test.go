package config

import (
	"testing"
	"time"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "hello")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_FLOAT", "36.5")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_DURATION", "90s")
	t.Setenv("TEST_SLICE", "a,b,c")

	if got := getEnv("TEST_STRING", "fallback"); got != "hello" {
		t.Errorf("getEnv = %q, want %q", got, "hello")
	}
	if got := getEnv("TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getEnv fallback = %q, want %q", got, "fallback")
	}
	if got := getEnvAsInt("TEST_INT", 0); got != 42 {
		t.Errorf("getEnvAsInt = %d, want 42", got)
	}
	if got := getEnvAsFloat("TEST_FLOAT", 0); got != 36.5 {
		t.Errorf("getEnvAsFloat = %v, want 36.5", got)
	}
	if got := getEnvAsBool("TEST_BOOL", false); !got {
		t.Error("getEnvAsBool = false, want true")
	}
	if got := getEnvAsDuration("TEST_DURATION", 0); got != 90*time.Second {
		t.Errorf("getEnvAsDuration = %v, want 90s", got)
	}
	if got := getEnvAsSlice("TEST_SLICE", nil); len(got) != 3 || got[1] != "b" {
		t.Errorf("getEnvAsSlice = %v, want [a b c]", got)
	}
}

func TestGetEnvHelpersBadValues(t *testing.T) {
	t.Setenv("TEST_INT", "not-a-number")
	t.Setenv("TEST_DURATION", "garbage")

	if got := getEnvAsInt("TEST_INT", 7); got != 7 {
		t.Errorf("getEnvAsInt with garbage = %d, want fallback 7", got)
	}
	if got := getEnvAsDuration("TEST_DURATION", time.Minute); got != time.Minute {
		t.Errorf("getEnvAsDuration with garbage = %v, want fallback 1m", got)
	}
}

func TestValidate(t *testing.T) {
	valid := &Config{
		JWT:      JWTConfig{Secret: "a-secret-key-that-is-at-least-32-chars"},
		Database: DatabaseConfig{Host: "localhost", Name: "retailpos_db", User: "retailpos_user"},
		Redis:    RedisConfig{Host: "localhost"},
		Server:   ServerConfig{Port: "8080"},
		Business: BusinessConfig{DefaultExchangeRate: 36.5},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() on valid config: %v", err)
	}

	shortSecret := *valid
	shortSecret.JWT.Secret = "too-short"
	if err := shortSecret.Validate(); err == nil {
		t.Error("expected short JWT secret to fail validation")
	}

	badRate := *valid
	badRate.Business.DefaultExchangeRate = 0
	if err := badRate.Validate(); err == nil {
		t.Error("expected zero default exchange rate to fail validation")
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	c := &Config{Database: DatabaseConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", Name: "pos", SSLMode: "disable",
	}}
	want := "host=db port=5432 user=u password=p dbname=pos sslmode=disable"
	if got := c.GetDatabaseDSN(); got != want {
		t.Errorf("GetDatabaseDSN() = %q, want %q", got, want)
	}
}

func TestEnvironmentChecks(t *testing.T) {
	c := &Config{App: AppConfig{Environment: "development"}}
	if !c.IsDevelopment() || c.IsProduction() {
		t.Error("development environment misreported")
	}

	c.App.Environment = "production"
	if c.IsDevelopment() || !c.IsProduction() {
		t.Error("production environment misreported")
	}
}
