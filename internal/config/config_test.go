package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(writeConfigFile(t, "debug: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !config.Debug {
		t.Errorf("debug = false, want true")
	}
	if config.AppName != DefaultAppName {
		t.Errorf("appName = %q, want %q", config.AppName, DefaultAppName)
	}
	if config.ListenAddr != DefaultListenAddr {
		t.Errorf("listenAddr = %q, want %q", config.ListenAddr, DefaultListenAddr)
	}
	if config.Session.SessionMaxAge != DefaultSessionMaxAge {
		t.Errorf("sessionMaxAge = %v, want %v", config.Session.SessionMaxAge, DefaultSessionMaxAge)
	}
	if config.Session.CookieName != DefaultCookieName {
		t.Errorf("cookieName = %q, want %q", config.Session.CookieName, DefaultCookieName)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	content := `
appName: Valhalla
listenAddr: 127.0.0.1:8080
redisURL: redis://localhost:6379/1
session:
  sessionMaxAge: 2h
  cookieName: sid
  cookieSecure: true
`
	config, err := LoadConfig(writeConfigFile(t, content))
	if err != nil {
		t.Fatal(err)
	}
	if config.AppName != "Valhalla" {
		t.Errorf("appName = %q", config.AppName)
	}
	if config.ListenAddr != "127.0.0.1:8080" {
		t.Errorf("listenAddr = %q", config.ListenAddr)
	}
	if config.RedisURL != "redis://localhost:6379/1" {
		t.Errorf("redisURL = %q", config.RedisURL)
	}
	if config.Session.SessionMaxAge != 2*time.Hour {
		t.Errorf("sessionMaxAge = %v", config.Session.SessionMaxAge)
	}
	if config.Session.CookieName != "sid" || !config.Session.CookieSecure {
		t.Errorf("session = %+v", config.Session)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
