package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"recetin/internal/recipe"
)

const recipeColumns = "id, rev, title, description, notes, doc_json, image_type, image_data, created_at, updated_at"

// document is the JSON body stored alongside the indexed columns.
type document struct {
	Ingredients []recipe.Ingredient `json:"ingredients"`
	Steps       []recipe.Step       `json:"steps"`
}

func scanRecipe(scanner interface{ Scan(dest ...any) error }) (*recipe.Recipe, error) {
	var (
		id          string
		rev         string
		title       string
		description string
		notes       sql.NullString
		docJSON     string
		imageType   sql.NullString
		imageData   []byte
		createdRaw  sql.NullString
		updatedRaw  sql.NullString
	)
	if err := scanner.Scan(
		&id,
		&rev,
		&title,
		&description,
		&notes,
		&docJSON,
		&imageType,
		&imageData,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal([]byte(docJSON), &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	if doc.Ingredients == nil {
		doc.Ingredients = []recipe.Ingredient{}
	}
	if doc.Steps == nil {
		doc.Steps = []recipe.Step{}
	}

	r := &recipe.Recipe{
		ID:          id,
		Rev:         rev,
		Title:       title,
		Description: description,
		Notes:       notes.String,
		Ingredients: doc.Ingredients,
		Steps:       doc.Steps,
	}
	if imageType.Valid && len(imageData) > 0 {
		r.Image = &recipe.Image{ContentType: imageType.String, Data: imageData}
	}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		r.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		r.UpdatedAt = updated
	}
	return r, nil
}

func encodeDocument(r *recipe.Recipe) (string, error) {
	doc := document{Ingredients: r.Ingredients, Steps: r.Steps}
	if doc.Ingredients == nil {
		doc.Ingredients = []recipe.Ingredient{}
	}
	if doc.Steps == nil {
		doc.Steps = []recipe.Step{}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	return string(data), nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func formatTime(value time.Time) string {
	return value.UTC().Format(time.RFC3339Nano)
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}

// TitleKey returns the case-folded form of a title used by the title index.
func TitleKey(title string) string {
	return cases.Fold().String(strings.TrimSpace(title))
}

// newDocumentID mirrors the "<app>:<title>:<unix-ms>" identifiers of the
// original document database.
func newDocumentID(title string, at time.Time) string {
	return fmt.Sprintf("recetin:%s:%d", title, at.UnixMilli())
}

// nextRevision returns the revision following current ("" starts at 1).
func nextRevision(current string) (string, error) {
	generation := 0
	if current != "" {
		head, _, ok := strings.Cut(current, "-")
		if !ok {
			return "", fmt.Errorf("malformed revision %q", current)
		}
		n, err := strconv.Atoi(head)
		if err != nil {
			return "", fmt.Errorf("malformed revision %q: %w", current, err)
		}
		generation = n
	}
	return fmt.Sprintf("%d-%s", generation+1, revisionHash()), nil
}

func revisionHash() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
