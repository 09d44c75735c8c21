package cmd

import (
	"context"
	"fmt"

	"github.com/Semior001/newsly/app/state"
	"github.com/Semior001/newsly/app/store"
	"github.com/samber/lo"
)

// Books is a command to print a best-seller list.
type Books struct {
	CommonOpts
	List  string `long:"list" default:"hardcover-fiction" description:"best-seller list name"`
	Lists bool   `long:"lists" description:"print known best-seller lists and exit"`
}

// Execute runs the command.
func (b *Books) Execute(_ []string) error {
	return b.run(func(ctx context.Context, a *app) error {
		if b.Lists {
			for _, l := range a.cfg.BookLists {
				if _, err := fmt.Fprintf(b.out(), "%-40s %s\n", l.Value, l.Label); err != nil {
					return fmt.Errorf("print list: %w", err)
				}
			}
			return nil
		}

		list := b.List
		if list == "" {
			list = state.DefaultListName
		}

		a.svc.FetchBooks(ctx, list)

		books := a.st.State().Books
		return render(b.out(), "books", booksView{
			Label: a.cfg.BookListLabel(list),
			Err:   books.Error,
			Books: books.Books,
		})
	})
}

// Movies is a command to print recent movie reviews.
type Movies struct {
	CommonOpts
	CriticsPick bool `long:"critics-pick" description:"print only critics picks"`
}

// Execute runs the command.
func (m *Movies) Execute(_ []string) error {
	return m.run(func(ctx context.Context, a *app) error {
		a.svc.FetchMovies(ctx)

		movies := a.st.State().Movies
		if m.CriticsPick {
			movies.Reviews = lo.Filter(movies.Reviews, func(r store.Review, _ int) bool { return r.CriticsPick })
		}

		return render(m.out(), "movies", movies)
	})
}
