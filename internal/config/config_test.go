package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Conf.Path != "conf_can.txt" {
		t.Errorf("expected default conf path, got %q", cfg.Conf.Path)
	}
	if cfg.Python.Interpreter == "" {
		t.Error("expected a default interpreter")
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("unexpected log defaults: %q/%q", cfg.Log.Level, cfg.Log.Format)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CANLOG_PYTHON_INTERPRETER", "/opt/python/bin/python3")
	t.Setenv("CANLOG_CONF_PATH", "/tmp/conf_can.txt")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Python.Interpreter != "/opt/python/bin/python3" {
		t.Errorf("interpreter override not applied: %q", cfg.Python.Interpreter)
	}
	if cfg.Conf.Path != "/tmp/conf_can.txt" {
		t.Errorf("conf path override not applied: %q", cfg.Conf.Path)
	}
}
