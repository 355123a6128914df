package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestSetAndGet(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load()
	if err := Set(KeyTemplatesDir, "/srv/templates"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, ".stackcraft", "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "templates_dir: /srv/templates") {
		t.Errorf("config file missing key, got:\n%s", data)
	}

	viper.Reset()
	Load()
	if got := Get(KeyTemplatesDir); got != "/srv/templates" {
		t.Errorf("Get() = %q, want %q", got, "/srv/templates")
	}
}

func TestSetRejectsUnknownKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load()
	if err := Set("mirror_url", "x"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STACKCRAFT_DEPENDENCY_VERSION", "1.4.0")
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load()
	if got := Get(KeyDependencyVersion); got != "1.4.0" {
		t.Errorf("Get() = %q, want %q", got, "1.4.0")
	}
	if got := Get(KeyLogLevel); got != "warn" {
		t.Errorf("default log level = %q, want %q", got, "warn")
	}
}
