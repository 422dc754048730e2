package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port    int      `env:"QUARRY_MCP_TEST_PORT" envDefault:"9400"`
	Targets []string `env:"QUARRY_MCP_TEST_TARGETS" envSeparator:","`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 9400 {
		t.Fatalf("expected default port 9400, got %d", cfg.Port)
	}
	if len(cfg.Targets) != 0 {
		t.Fatalf("expected no targets, got %v", cfg.Targets)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("QUARRY_MCP_TEST_PORT", "8123")
	t.Setenv("QUARRY_MCP_TEST_TARGETS", "issues,projects")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 8123 {
		t.Fatalf("expected port 8123, got %d", cfg.Port)
	}
	if len(cfg.Targets) != 2 || cfg.Targets[0] != "issues" || cfg.Targets[1] != "projects" {
		t.Fatalf("expected [issues projects], got %v", cfg.Targets)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("QUARRY_MCP_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
