package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"recetin/internal/logging"
	"recetin/internal/notifications"
	"recetin/internal/recipe"
	"recetin/internal/store"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored recipes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				recipes, err := st.List(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput {
					rows := make([]recipeSummary, 0, len(recipes))
					for _, r := range recipes {
						rows = append(rows, summarize(r))
					}
					return writeJSON(cmd, rows)
				}
				out := cmd.OutOrStdout()
				if len(recipes) == 0 {
					fmt.Fprintln(out, "No recipes found")
					return nil
				}
				fmt.Fprintln(out, renderRecipeTable(recipes, ctx.previewLength(), ctx.colorize(out)))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var exportMode bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id|title>",
		Short: "Print a recipe",
		Long: `Print a recipe in readable form.

With --export the sigil-tagged text used by import and edit is printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if exportMode && jsonOutput {
				return errors.New("--export and --json are mutually exclusive")
			}
			return ctx.withStore(func(st *store.Store) error {
				r, err := resolveRecipe(cmd.Context(), st, args[0])
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, r)
				}
				fmt.Fprintln(cmd.OutOrStdout(), recipe.Stringify(*r, exportMode))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&exportMode, "export", false, "Print the sigil-tagged export text")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newNewCommand(ctx *commandContext) *cobra.Command {
	var (
		title       string
		description string
		notes       string
		ingredients []string
		steps       []string
		imagePath   string
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a recipe from flags",
		Long: `Create a recipe from flags.

Ingredients use the "name ; amount, unit" form. An --ingredient value that
starts with "+" is a replacement for the ingredient before it:

  recetin new --title Bread \
    --ingredient "Flour ; 2, cups" --ingredient "+Rice flour ; 2, cups" \
    --step "Mix" --step "Bake"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := recipe.Recipe{
				Title:       strings.TrimSpace(title),
				Description: strings.TrimSpace(description),
				Notes:       strings.TrimSpace(notes),
				Steps:       []recipe.Step{},
			}
			parsed, err := ingredientsFromFlags(ingredients)
			if err != nil {
				return err
			}
			r.Ingredients = parsed
			for i, step := range steps {
				r.Steps = append(r.Steps, recipe.Step{Order: i, Directions: strings.TrimSpace(step)})
			}
			if imagePath != "" {
				image, err := loadImage(imagePath)
				if err != nil {
					return err
				}
				r.Image = image
			}
			return ctx.withStore(func(st *store.Store) error {
				saved, err := saveNewRecipe(cmd, ctx, st, r, force)
				if err != nil {
					return ctx.reportError(cmd, "create", err)
				}
				ctx.publish(cmd, notifications.EventRecipeSaved, notifications.Payload{"title": saved.Title, "id": saved.ID})
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %q as %s\n", saved.Title, saved.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Recipe title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Short description")
	cmd.Flags().StringVar(&notes, "notes", "", "Private notes (not included in exports)")
	cmd.Flags().StringArrayVarP(&ingredients, "ingredient", "i", nil, `Ingredient as "name ; amount, unit" (repeatable, "+" prefix for replacements)`)
	cmd.Flags().StringArrayVarP(&steps, "step", "s", nil, "Step directions (repeatable, in order)")
	cmd.Flags().StringVar(&imagePath, "image", "", "Image file to attach")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Save even if a recipe with the same title exists")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func ingredientsFromFlags(values []string) ([]recipe.Ingredient, error) {
	out := []recipe.Ingredient{}
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if rest, ok := strings.CutPrefix(trimmed, "+"); ok {
			if len(out) == 0 {
				return nil, fmt.Errorf("replacement %q has no ingredient before it", value)
			}
			replacement, err := recipe.ParseIngredient(rest)
			if err != nil {
				return nil, fmt.Errorf("replacement %q: %w", value, err)
			}
			last := &out[len(out)-1]
			last.Replacements = append(last.Replacements, replacement)
			continue
		}
		ingredient, err := recipe.ParseIngredient(trimmed)
		if err != nil {
			return nil, fmt.Errorf("ingredient %q: %w", value, err)
		}
		out = append(out, ingredient)
	}
	return out, nil
}

func loadImage(path string) (*recipe.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("image %s is empty", path)
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%s does not look like an image (%s)", path, contentType)
	}
	return &recipe.Image{ContentType: contentType, Data: data}, nil
}

// saveNewRecipe stores r as a new document, refusing duplicate titles unless force is set.
func saveNewRecipe(cmd *cobra.Command, ctx *commandContext, st *store.Store, r recipe.Recipe, force bool) (*recipe.Recipe, error) {
	if r.Title == "" {
		return nil, errors.New("recipe title is required")
	}
	if !force {
		exists, err := st.TitleExists(cmd.Context(), r.Title)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("a recipe titled %q already exists (use --force to save anyway)", r.Title)
		}
	}
	r.ID = ""
	r.Rev = ""
	saved, err := st.Save(cmd.Context(), &r)
	if err != nil {
		return nil, err
	}
	ctx.loggerFor(cmd).Info("recipe saved",
		logging.String(logging.FieldRecipeID, saved.ID),
		logging.String(logging.FieldRevision, saved.Rev),
		logging.String(logging.FieldTitle, saved.Title),
	)
	return saved, nil
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id|title>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a recipe",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				r, err := resolveRecipe(cmd.Context(), st, args[0])
				if err != nil {
					return err
				}
				if err := st.Delete(cmd.Context(), r.ID, r.Rev); err != nil {
					return ctx.reportError(cmd, "delete", err)
				}
				ctx.loggerFor(cmd).Info("recipe deleted",
					logging.String(logging.FieldRecipeID, r.ID),
					logging.String(logging.FieldTitle, r.Title),
				)
				ctx.publish(cmd, notifications.EventRecipeDeleted, notifications.Payload{"title": r.Title, "id": r.ID})
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q (%s)\n", r.Title, r.ID)
				return nil
			})
		},
	}
}
