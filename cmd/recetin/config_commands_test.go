package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "generated", "config.toml")

	out, _, err := runCLI(t, env, nil, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration to "+target)
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected sample config: %v", err)
	}

	_, _, err = runCLI(t, env, nil, "config", "init", "--path", target)
	if err == nil {
		t.Fatal("expected existing file error")
	}
	requireContains(t, err.Error(), "--overwrite")

	if _, _, err := runCLI(t, env, nil, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigInitDefaultPathUsesHome(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, nil, "config", "init")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	want := filepath.Join(env.baseDir, "home", ".config", "recetin", "config.toml")
	requireContains(t, out, want)
}

func TestConfigValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, nil, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+env.configPath)
	requireContains(t, out, "Database: "+env.cfg.DatabasePath())
	requireContains(t, out, "Configuration valid")
	requireNotContains(t, out, "defaults were used")
}

func TestConfigValidateRejectsBadValues(t *testing.T) {
	env := setupCLITestEnv(t)
	content := "[display]\ncolor = \"sometimes\"\n"
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := runCLI(t, env, nil, "config", "validate")
	if err == nil {
		t.Fatal("expected validation error")
	}
	requireContains(t, err.Error(), "load config")

	if _, _, err := runCLI(t, env, nil, "list"); err == nil {
		t.Fatal("expected commands to fail with an invalid config")
	}
}

func TestConfigShowPrintsEffectiveValues(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, nil, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "[paths]")
	requireContains(t, out, env.cfg.Paths.DataDir)
	requireContains(t, out, "[display]")
	requireContains(t, out, "preview_length = 48")
	requireContains(t, out, "never")
}
