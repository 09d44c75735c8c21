package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Semior001/newsly/app/state"
	"golang.org/x/exp/slog"
)

// FetchBooks loads the best-seller list. The active list name
// changes only when the list is loaded.
func (s *Service) FetchBooks(ctx context.Context, listName string) {
	ctx = withRequestID(ctx)

	listName = strings.TrimSpace(listName)
	if listName == "" {
		err := fmt.Errorf("%w: list name is required", ErrValidation)
		s.st.Dispatch(ctx, state.BooksFailed{Err: err.Error()})
		return
	}

	s.st.Dispatch(ctx, state.BooksRequested{ListName: listName})

	books, err := s.gw.BestSellers(ctx, listName)
	if err != nil {
		s.log.WarnCtx(ctx, "failed to fetch best sellers",
			slog.String("list", listName),
			slog.Any("err", err))
		s.st.Dispatch(ctx, state.BooksFailed{Err: err.Error()})
		return
	}

	s.st.Dispatch(ctx, state.BooksSucceeded{ListName: listName, Books: books})
}

// FetchMovies loads recent movie reviews.
func (s *Service) FetchMovies(ctx context.Context) {
	ctx = withRequestID(ctx)
	s.st.Dispatch(ctx, state.MoviesRequested{})

	reviews, err := s.gw.MovieReviews(ctx)
	if err != nil {
		s.log.WarnCtx(ctx, "failed to fetch movie reviews", slog.Any("err", err))
		s.st.Dispatch(ctx, state.MoviesFailed{Err: err.Error()})
		return
	}

	s.st.Dispatch(ctx, state.MoviesSucceeded{Reviews: reviews})
}

// SetSubscribed changes the newsletter subscription flag.
func (s *Service) SetSubscribed(ctx context.Context, subscribed bool) {
	ctx = withRequestID(ctx)
	s.log.InfoCtx(ctx, "subscription changed", slog.Bool("subscribed", subscribed))
	s.st.Dispatch(ctx, state.SetSubscribed{Subscribed: subscribed})
}
