package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recetin/internal/recipe"
	"recetin/internal/store"
	"recetin/internal/textutil"
)

const (
	suggestionThreshold = 0.2
	suggestionLimit     = 3
)

// resolveRecipe looks an argument up as a document ID first and then as a
// title, ignoring case. Several recipes sharing the title is an error that
// lists their IDs.
func resolveRecipe(ctx context.Context, st *store.Store, arg string) (*recipe.Recipe, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, errors.New("recipe id or title is required")
	}

	r, err := st.Get(ctx, arg)
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	matches, err := st.FindByTitle(ctx, arg)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, notFoundError(ctx, st, arg)
	default:
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = m.ID
		}
		return nil, fmt.Errorf("%d recipes are titled %q; use an id: %s", len(matches), arg, strings.Join(ids, ", "))
	}
}

func notFoundError(ctx context.Context, st *store.Store, arg string) error {
	base := fmt.Errorf("no recipe matches %q: %w", arg, store.ErrNotFound)
	all, err := st.List(ctx)
	if err != nil || len(all) == 0 {
		return base
	}
	titles := make([]string, len(all))
	for i, r := range all {
		titles[i] = r.Title
	}
	ranked := textutil.RankSimilar(arg, titles, suggestionThreshold, suggestionLimit)
	if len(ranked) == 0 {
		return base
	}
	names := make([]string, len(ranked))
	for i, m := range ranked {
		names[i] = fmt.Sprintf("%q", titles[m.Index])
	}
	return fmt.Errorf("%w (did you mean %s?)", base, strings.Join(names, ", "))
}
