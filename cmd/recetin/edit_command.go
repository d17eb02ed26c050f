package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"recetin/internal/logging"
	"recetin/internal/notifications"
	"recetin/internal/preflight"
	"recetin/internal/recipe"
	"recetin/internal/store"
)

// runEditor opens path in the user's editor and waits for it to exit.
var runEditor = func(ctx context.Context, editor, path string, stdin io.Reader, stdout, stderr io.Writer) error {
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		return errors.New("no editor configured (set $EDITOR)")
	}
	cmd := exec.CommandContext(ctx, fields[0], append(fields[1:], path)...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run editor %s: %w", fields[0], err)
	}
	return nil
}

func newEditCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id|title>",
		Short: "Edit a recipe in $EDITOR",
		Long: `Open a recipe's export text in $VISUAL or $EDITOR and save the result.

Notes and the attached image are not part of the text and are kept as they
are. Nothing is written when the text comes back unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			lock, err := store.AcquireEditLock(cfg.EditLockPath())
			if err != nil {
				if errors.Is(err, store.ErrLocked) {
					return errors.New("another recetin edit session is running")
				}
				return err
			}
			defer lock.Release()

			return ctx.withStore(func(st *store.Store) error {
				original, err := resolveRecipe(cmd.Context(), st, args[0])
				if err != nil {
					return err
				}
				return editRecipe(cmd, ctx, st, original)
			})
		},
	}
}

func editRecipe(cmd *cobra.Command, ctx *commandContext, st *store.Store, original *recipe.Recipe) error {
	logger := ctx.loggerFor(cmd).With(logging.String(logging.FieldRecipeID, original.ID))
	before := recipe.Stringify(*original, true)

	file, err := os.CreateTemp("", "recetin-*.txt")
	if err != nil {
		return fmt.Errorf("create edit buffer: %w", err)
	}
	path := file.Name()
	defer os.Remove(path)
	if _, err := file.WriteString(before + "\n"); err != nil {
		_ = file.Close()
		return fmt.Errorf("write edit buffer: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close edit buffer: %w", err)
	}

	editor := preflight.ResolveEditor()
	logger.Debug("launching editor", logging.String("editor", editor), logging.String("path", path))
	if err := runEditor(cmd.Context(), editor, path, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read edit buffer: %w", err)
	}
	after := strings.TrimRight(string(data), "\r\n")
	out := cmd.OutOrStdout()
	if after == before {
		fmt.Fprintln(out, "No changes")
		return nil
	}

	props, err := recipe.Parse(after)
	if err != nil {
		return ctx.reportError(cmd, "edit", fmt.Errorf("edited text: %w (nothing saved)", err))
	}
	updated := props.ToRecipe()
	updated.ID = original.ID
	updated.Rev = original.Rev
	updated.Notes = original.Notes
	updated.Image = original.Image
	if strings.TrimSpace(updated.Title) == "" {
		return errors.New("edited recipe has no title (nothing saved)")
	}
	if recipe.Equal(updated, *original) {
		fmt.Fprintln(out, "No changes")
		return nil
	}

	// The stored image is kept by passing nil.
	updated.Image = nil
	saved, err := st.Save(cmd.Context(), &updated)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			err = fmt.Errorf("%q changed while you were editing; re-run edit to start from the latest version: %w", original.Title, err)
		}
		return ctx.reportError(cmd, "edit", err)
	}
	logger.Info("recipe saved",
		logging.String(logging.FieldRevision, saved.Rev),
		logging.String(logging.FieldTitle, saved.Title),
	)
	ctx.publish(cmd, notifications.EventRecipeSaved, notifications.Payload{"title": saved.Title, "id": saved.ID})
	fmt.Fprintf(out, "Saved %q (%s)\n", saved.Title, saved.Rev)
	return nil
}
