package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"recetin/internal/config"
	"recetin/internal/store"
	"recetin/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
	clipboard  *string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	base := testsupport.BaseDir(cfg)
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("RECETIN_NTFY_TOPIC", "")

	configPath := filepath.Join(base, "recetin.toml")
	writeTestConfig(t, configPath, cfg)

	clip := stubClipboard(t)

	return &cliTestEnv{cfg: cfg, configPath: configPath, baseDir: base, clipboard: clip}
}

// runCLI executes the root command against the environment's config file.
func runCLI(t *testing.T, env *cliTestEnv, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	cmd.SetIn(stdin)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(`[paths]
data_dir = %q
log_dir = %q

[logging]
level = "debug"

[notifications]
ntfy_topic = %q

[display]
color = "never"
preview_length = %d
`,
		cfg.Paths.DataDir,
		cfg.Paths.LogDir,
		cfg.Notifications.NtfyTopic,
		cfg.Display.PreviewLength,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// stubClipboard replaces the system clipboard with an in-memory buffer.
func stubClipboard(t *testing.T) *string {
	t.Helper()
	var buffer string
	prevRead, prevWrite := readClipboard, writeClipboard
	readClipboard = func() (string, error) { return buffer, nil }
	writeClipboard = func(text string) error {
		buffer = text
		return nil
	}
	t.Cleanup(func() {
		readClipboard, writeClipboard = prevRead, prevWrite
	})
	return &buffer
}

func openTestStore(t *testing.T, env *cliTestEnv) *store.Store {
	t.Helper()
	return testsupport.MustOpenStore(t, env.cfg)
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}

const breadExport = `>Banana Bread
< Moist and sweet
~ Banana ; 3, units
+ Plantain ; 2, units
~ Flour ; 2, cups
.- 1 ~ Mash the bananas
.- 2 ~ Fold in flour and bake`
