package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"recetin/internal/config"
	"recetin/internal/logging"
	"recetin/internal/notifications"
	"recetin/internal/store"
)

// Clipboard access is swapped out in tests.
var (
	readClipboard  = clipboard.ReadAll
	writeClipboard = clipboard.WriteAll
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger

	notifier notifications.Service
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// configPath returns the --config value, or "" to search the default locations.
func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// loggerFor returns the command logger. Warnings are echoed to the command's
// stderr; everything at the configured level goes to the log file.
func (c *commandContext) loggerFor(cmd *cobra.Command) *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "logging disabled: %v\n", err)
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return logging.WithContext(logging.WithCommand(cmd.Context(), cmd.Name()), c.logger)
}

func (c *commandContext) notifications() notifications.Service {
	if c.notifier != nil {
		return c.notifier
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return notifications.NewService(nil)
	}
	c.notifier = notifications.NewService(cfg)
	return c.notifier
}

// publish sends a notification and logs delivery failures without failing the command.
func (c *commandContext) publish(cmd *cobra.Command, event notifications.Event, payload notifications.Payload) {
	if err := c.notifications().Publish(cmd.Context(), event, payload); err != nil {
		logging.NewComponentLogger(c.loggerFor(cmd), "notifications").Warn("delivery failed",
			logging.String("event", string(event)),
			logging.String(logging.FieldEventType, "notification_failed"),
			logging.Error(err),
		)
	}
}

// reportError logs err and publishes an error notification before handing it back.
func (c *commandContext) reportError(cmd *cobra.Command, action string, err error) error {
	if err == nil {
		return nil
	}
	logging.ErrorWithContext(c.loggerFor(cmd), action+" failed", action+"_failed", logging.Error(err))
	c.publish(cmd, notifications.EventError, notifications.Payload{"context": action, "error": err})
	return err
}

func (c *commandContext) withStore(fn func(*store.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	st, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("open recipe store: %w", err)
	}
	defer st.Close()
	return fn(st)
}

func (c *commandContext) colorize(w io.Writer) bool {
	cfg, err := c.ensureConfig()
	if err != nil {
		return shouldColorize(w)
	}
	switch cfg.Display.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return shouldColorize(w)
	}
}

func (c *commandContext) previewLength() int {
	cfg, err := c.ensureConfig()
	if err != nil || cfg.Display.PreviewLength <= 0 {
		return config.Default().Display.PreviewLength
	}
	return cfg.Display.PreviewLength
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
