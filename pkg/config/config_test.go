package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testConfig struct {
	CatalogPath string        `envconfig:"CATALOG_PATH" split_words:"true" default:"shop_bot.json"`
	APIKey      string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Timeout     time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
}

func TestExportFileDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "SHOPTEST_API_KEY=from-file\nSHOPTEST_TIMEOUT=5s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("SHOPTEST_API_KEY", "from-env")
	t.Setenv("SHOPTEST_TIMEOUT", "")
	os.Unsetenv("SHOPTEST_TIMEOUT")

	if err := ExportFile(path); err != nil {
		t.Fatalf("ExportFile() error = %v", err)
	}
	if got := os.Getenv("SHOPTEST_API_KEY"); got != "from-env" {
		t.Fatalf("SHOPTEST_API_KEY = %q, want from-env", got)
	}
	if got := os.Getenv("SHOPTEST_TIMEOUT"); got != "5s" {
		t.Fatalf("SHOPTEST_TIMEOUT = %q, want 5s", got)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SHOPCFG_API_KEY", "secret")
	t.Setenv("SHOPCFG_TIMEOUT", "2m")

	conf, err := FromEnv[testConfig]("SHOPCFG")
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if conf.APIKey != "secret" {
		t.Fatalf("APIKey = %q", conf.APIKey)
	}
	if conf.Timeout != 2*time.Minute {
		t.Fatalf("Timeout = %v", conf.Timeout)
	}
	if conf.CatalogPath != "shop_bot.json" {
		t.Fatalf("CatalogPath = %q", conf.CatalogPath)
	}
}

func TestFromEnvMissingRequired(t *testing.T) {
	t.Setenv("SHOPMISSING_API_KEY", "")
	os.Unsetenv("SHOPMISSING_API_KEY")

	if _, err := FromEnv[testConfig]("SHOPMISSING"); err == nil {
		t.Fatal("expected error for missing required value")
	}
}
