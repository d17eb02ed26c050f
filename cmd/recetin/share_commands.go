package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"recetin/internal/fileutil"
	"recetin/internal/notifications"
	"recetin/internal/recipe"
	"recetin/internal/store"
	"recetin/internal/textutil"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var fromClipboard bool
	var force bool

	cmd := &cobra.Command{
		Use:   "import [file|-]",
		Short: "Import a recipe from exported text",
		Long: `Import a recipe from the sigil-tagged text produced by "recetin export".

Reads the named file, standard input when the argument is "-" or omitted,
or the system clipboard with --clipboard.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromClipboard && len(args) > 0 {
				return errors.New("--clipboard cannot be combined with a file argument")
			}
			text, source, err := readImportSource(cmd, args, fromClipboard)
			if err != nil {
				return err
			}
			props, err := recipe.Parse(text)
			if err != nil {
				return ctx.reportError(cmd, "import", fmt.Errorf("parse %s: %w", source, err))
			}
			return ctx.withStore(func(st *store.Store) error {
				saved, err := saveNewRecipe(cmd, ctx, st, props.ToRecipe(), force)
				if err != nil {
					return ctx.reportError(cmd, "import", err)
				}
				ctx.publish(cmd, notifications.EventRecipeImported, notifications.Payload{
					"title":  saved.Title,
					"id":     saved.ID,
					"source": source,
				})
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %q as %s (%d ingredients, %d steps)\n",
					saved.Title, saved.ID, len(saved.Ingredients), len(saved.Steps))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&fromClipboard, "clipboard", false, "Read the recipe text from the clipboard")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Import even if a recipe with the same title exists")
	return cmd
}

func readImportSource(cmd *cobra.Command, args []string, fromClipboard bool) (string, string, error) {
	switch {
	case fromClipboard:
		text, err := readClipboard()
		if err != nil {
			return "", "", fmt.Errorf("read clipboard: %w", err)
		}
		return text, "clipboard", nil
	case len(args) == 0 || args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "stdin", nil
	default:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}
}

func newExportCommand(ctx *commandContext) *cobra.Command {
	var (
		displayMode bool
		outPath     string
		outDir      string
		toClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "export <id|title>",
		Short: "Export a recipe for sharing",
		Long: `Export a recipe as sigil-tagged text that "recetin import" reads back.

With --display the readable form is produced instead. Output goes to stdout
unless --out, --out-dir or --clipboard is given. Notes are written but
import does not read them back.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath != "" && outDir != "" {
				return errors.New("--out and --out-dir are mutually exclusive")
			}
			return ctx.withStore(func(st *store.Store) error {
				r, err := resolveRecipe(cmd.Context(), st, args[0])
				if err != nil {
					return err
				}
				text := recipe.Stringify(*r, !displayMode)
				out := cmd.OutOrStdout()

				target := outPath
				if outDir != "" {
					target = filepath.Join(outDir, textutil.ExportFileName(r.Title))
				}
				if target != "" {
					if err := writeExportFile(target, text); err != nil {
						return err
					}
					fmt.Fprintf(out, "Wrote %s\n", target)
				}
				if toClipboard {
					if err := writeClipboard(text); err != nil {
						return fmt.Errorf("write clipboard: %w", err)
					}
					fmt.Fprintf(out, "Copied %q to the clipboard\n", r.Title)
				}
				if target == "" && !toClipboard {
					fmt.Fprintln(out, text)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&displayMode, "display", false, "Export the readable form without sigils")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to this file")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Write <title>.txt into this directory")
	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "Copy to the clipboard")
	return cmd
}

func writeExportFile(path, text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if err := fileutil.WriteFileAtomic(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
