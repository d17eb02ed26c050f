package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"recetin/internal/recipe"
)

// Save creates or replaces a recipe document and returns the stored copy.
//
// A recipe without an ID is inserted under a freshly generated identifier.
// Replacing an existing document requires r.Rev to match the stored revision.
// A nil image keeps whatever image is already attached.
func (s *Store) Save(ctx context.Context, r *recipe.Recipe) (*recipe.Recipe, error) {
	if r == nil {
		return nil, errors.New("recipe is nil")
	}
	ctx = ensureContext(ctx)
	body, err := encodeDocument(r)
	if err != nil {
		return nil, err
	}

	var id string
	err = s.withTx(ctx, func(tx *sql.Tx) error {
		now := s.now().UTC()
		id = r.ID
		if id == "" {
			id, err = s.unusedID(ctx, tx, r.Title, now)
			if err != nil {
				return err
			}
		}

		var storedRev string
		row := tx.QueryRowContext(ctx, `SELECT rev FROM recipes WHERE id = ?`, id)
		switch scanErr := row.Scan(&storedRev); {
		case errors.Is(scanErr, sql.ErrNoRows):
			if r.Rev != "" {
				return fmt.Errorf("save %s: %w", id, ErrConflict)
			}
			return insertRecipe(ctx, tx, id, r, body, now)
		case scanErr != nil:
			return fmt.Errorf("load revision: %w", scanErr)
		}

		if r.Rev != storedRev {
			return fmt.Errorf("save %s: have %q, stored %q: %w", id, r.Rev, storedRev, ErrConflict)
		}
		rev, err := nextRevision(storedRev)
		if err != nil {
			return err
		}
		query := `UPDATE recipes SET rev = ?, title = ?, title_key = ?, description = ?, notes = ?, doc_json = ?, updated_at = ?`
		args := []any{rev, r.Title, TitleKey(r.Title), r.Description, nullableString(r.Notes), body, formatTime(now)}
		if r.Image != nil {
			query += `, image_type = ?, image_data = ?`
			args = append(args, nullableString(r.Image.ContentType), r.Image.Data)
		}
		query += ` WHERE id = ?`
		args = append(args, id)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("update recipe: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func insertRecipe(ctx context.Context, tx *sql.Tx, id string, r *recipe.Recipe, body string, now time.Time) error {
	rev, err := nextRevision("")
	if err != nil {
		return err
	}
	var (
		imageType any
		imageData any
	)
	if r.Image != nil {
		imageType = nullableString(r.Image.ContentType)
		imageData = r.Image.Data
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO recipes (id, rev, title, title_key, description, notes, doc_json, image_type, image_data, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, rev, r.Title, TitleKey(r.Title), r.Description, nullableString(r.Notes), body,
		imageType, imageData, formatTime(now), formatTime(now),
	)
	if err != nil {
		return fmt.Errorf("insert recipe: %w", err)
	}
	return nil
}

// unusedID generates a document identifier, stepping the timestamp forward
// when two recipes with the same title land in the same millisecond.
func (s *Store) unusedID(ctx context.Context, tx *sql.Tx, title string, at time.Time) (string, error) {
	for {
		id := newDocumentID(title, at)
		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM recipes WHERE id = ?`, id).Scan(&count); err != nil {
			return "", fmt.Errorf("check id: %w", err)
		}
		if count == 0 {
			return id, nil
		}
		at = at.Add(time.Millisecond)
	}
}

// Get fetches a recipe by identifier.
func (s *Store) Get(ctx context.Context, id string) (*recipe.Recipe, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id)
	r, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return r, nil
}

// List returns every recipe ordered by identifier.
func (s *Store) List(ctx context.Context) ([]*recipe.Recipe, error) {
	return s.query(ctx, `SELECT `+recipeColumns+` FROM recipes ORDER BY id`)
}

// FindByTitle returns the recipes whose title matches ignoring case.
func (s *Store) FindByTitle(ctx context.Context, title string) ([]*recipe.Recipe, error) {
	return s.query(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE title_key = ? ORDER BY id`, TitleKey(title))
}

// TitleExists reports whether any recipe already uses the title, ignoring case.
func (s *Store) TitleExists(ctx context.Context, title string) (bool, error) {
	ctx = ensureContext(ctx)
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM recipes WHERE title_key = ?`, TitleKey(title)).Scan(&count); err != nil {
		return false, fmt.Errorf("check title: %w", err)
	}
	return count > 0, nil
}

// Count returns the number of stored recipes.
func (s *Store) Count(ctx context.Context) (int, error) {
	ctx = ensureContext(ctx)
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM recipes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return count, nil
}

// Delete removes a recipe when rev matches its current revision.
func (s *Store) Delete(ctx context.Context, id, rev string) error {
	ctx = ensureContext(ctx)
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var storedRev string
		err := tx.QueryRowContext(ctx, `SELECT rev FROM recipes WHERE id = ?`, id).Scan(&storedRev)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("delete %s: %w", id, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("load revision: %w", err)
		}
		if storedRev != rev {
			return fmt.Errorf("delete %s: have %q, stored %q: %w", id, rev, storedRev, ErrConflict)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete recipe: %w", err)
		}
		return nil
	})
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]*recipe.Recipe, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}
	defer rows.Close()

	var recipes []*recipe.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return recipes, nil
}
