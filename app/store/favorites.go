package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// ErrNoURL is returned when an article without URL is added to favorites.
var ErrNoURL = errors.New("article has no url")

// Favorites keeps per-user lists of article snapshots.
// Lists are read from the KV on every call and written whole on every change,
// concurrent writers for the same user race last-write-wins.
type Favorites struct {
	kv KV
}

// NewFavorites makes a new Favorites over the given KV.
func NewFavorites(kv KV) *Favorites {
	return &Favorites{kv: kv}
}

// FavoritesKey returns the storage key of the user's favorites.
func FavoritesKey(username string) string { return "favorites_" + username }

// List returns favorites of the user in the order they were added.
func (f *Favorites) List(ctx context.Context, username string) ([]Article, error) {
	raw, err := f.kv.Get(ctx, FavoritesKey(username))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []Article{}, nil
		}
		return nil, fmt.Errorf("get favorites of %s: %w", username, err)
	}

	var res []Article
	if err = json.Unmarshal([]byte(raw), &res); err != nil {
		return nil, fmt.Errorf("unmarshal favorites of %s: %w", username, err)
	}

	if res == nil {
		res = []Article{}
	}

	return res, nil
}

// Add appends the article to the user's favorites,
// adding an article with an already stored URL does nothing.
func (f *Favorites) Add(ctx context.Context, username string, a Article) error {
	if a.URL == "" {
		return ErrNoURL
	}

	list, err := f.List(ctx, username)
	if err != nil {
		return err
	}

	if lo.ContainsBy(list, func(item Article) bool { return item.URL == a.URL }) {
		return nil
	}

	return f.save(ctx, username, append(list, a))
}

// Remove deletes the article with the given URL from the user's favorites,
// removing a missing URL does nothing.
func (f *Favorites) Remove(ctx context.Context, username, url string) error {
	list, err := f.List(ctx, username)
	if err != nil {
		return err
	}

	filtered := lo.Filter(list, func(item Article, _ int) bool { return item.URL != url })
	if len(filtered) == len(list) {
		return nil
	}

	return f.save(ctx, username, filtered)
}

// Has returns true if the user has the URL in favorites.
func (f *Favorites) Has(ctx context.Context, username, url string) (bool, error) {
	list, err := f.List(ctx, username)
	if err != nil {
		return false, err
	}

	return lo.ContainsBy(list, func(item Article) bool { return item.URL == url }), nil
}

func (f *Favorites) save(ctx context.Context, username string, list []Article) error {
	bts, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal favorites: %w", err)
	}

	if err = f.kv.Set(ctx, FavoritesKey(username), string(bts)); err != nil {
		return fmt.Errorf("save favorites of %s: %w", username, err)
	}

	return nil
}
