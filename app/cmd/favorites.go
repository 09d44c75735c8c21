package cmd

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

// Favorites is a group of commands to manage favorite articles
// of the logged in user.
type Favorites struct {
	List   FavoritesList   `command:"list" description:"list favorite articles"`
	Add    FavoritesAdd    `command:"add" description:"save an article to favorites"`
	Remove FavoritesRemove `command:"remove" description:"remove an article from favorites"`
}

// FavoritesList is a command to print favorites.
type FavoritesList struct {
	CommonOpts
}

// Execute runs the command.
func (f *FavoritesList) Execute(_ []string) error {
	return f.run(func(ctx context.Context, a *app) error {
		username, err := a.username()
		if err != nil {
			return err
		}

		list, err := a.favs.List(ctx, username)
		if err != nil {
			return fmt.Errorf("list favorites: %w", err)
		}

		return render(f.out(), "feed", feedView{Name: "favorites", Articles: rows(list)})
	})
}

// FavoritesAdd is a command to save a snapshot of the article to favorites.
type FavoritesAdd struct {
	CommonOpts
	Args struct {
		URL string `positional-arg-name:"url" required:"true" description:"article url"`
	} `positional-args:"yes"`
}

// Execute runs the command.
func (f *FavoritesAdd) Execute(_ []string) error {
	return f.run(func(ctx context.Context, a *app) error {
		username, err := a.username()
		if err != nil {
			return err
		}

		doc, err := a.reader.GetArticle(ctx, f.Args.URL)
		if err != nil {
			return fmt.Errorf("get article %s: %w", f.Args.URL, err)
		}

		// keep the url as the user passed it, it is the identity of the favorite
		doc.URL = f.Args.URL
		if err = a.favs.Add(ctx, username, doc.Article); err != nil {
			return fmt.Errorf("add favorite: %w", err)
		}

		a.log.InfoCtx(ctx, "favorite added", slog.String("username", username), slog.String("url", doc.URL))
		_, err = fmt.Fprintf(f.out(), "saved %q\n", doc.Title)
		return err
	})
}

// FavoritesRemove is a command to remove the article from favorites.
type FavoritesRemove struct {
	CommonOpts
	Args struct {
		URL string `positional-arg-name:"url" required:"true" description:"article url"`
	} `positional-args:"yes"`
}

// Execute runs the command.
func (f *FavoritesRemove) Execute(_ []string) error {
	return f.run(func(ctx context.Context, a *app) error {
		username, err := a.username()
		if err != nil {
			return err
		}

		if err = a.favs.Remove(ctx, username, f.Args.URL); err != nil {
			return fmt.Errorf("remove favorite: %w", err)
		}

		_, err = fmt.Fprintf(f.out(), "removed %s\n", f.Args.URL)
		return err
	})
}
