// Package service contains orchestrators of the application. Each of them
// runs gateway calls and dispatches request, success and failure actions,
// so the state always reaches a terminal state and errors never escape.
package service

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/Semior001/newsly/app/nyt"
	"github.com/Semior001/newsly/app/state"
	"github.com/Semior001/newsly/app/store"
	"github.com/Semior001/newsly/pkg/logx"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// ErrValidation is returned when the user input is invalid.
var ErrValidation = errors.New("validation failed")

// Caps of the news feeds.
const (
	TopStoriesLimit = 6
	PopularLimit    = 10

	MixedSections   = 4 // sections picked for the mixed feed
	MixedPerSection = 2 // stories picked from every section
)

//go:generate moq -out mock_gateway.go . Gateway

// Gateway defines methods of the remote content API.
type Gateway interface {
	TopStories(ctx context.Context, section string) ([]store.Article, error)
	MostPopular(ctx context.Context) ([]store.Article, error)
	Search(ctx context.Context, q nyt.SearchQuery) (nyt.SearchResult, error)
	BestSellers(ctx context.Context, list string) ([]store.Book, error)
	MovieReviews(ctx context.Context) ([]store.Review, error)
}

// Dispatcher applies actions to the state.
type Dispatcher interface {
	Dispatch(ctx context.Context, a state.Action)
}

// Service runs fetches of news, books, movies and search.
type Service struct {
	log *slog.Logger
	gw  Gateway
	st  Dispatcher
	seq atomic.Uint64
}

// NewService makes a new Service.
func NewService(lg *slog.Logger, gw Gateway, st Dispatcher) *Service {
	return &Service{log: lg, gw: gw, st: st}
}

// withRequestID tags the run with a request id, unless there is one already.
func withRequestID(ctx context.Context) context.Context {
	if _, ok := logx.RequestIDFromContext(ctx); ok {
		return ctx
	}
	return logx.ContextWithRequestID(ctx, uuid.New().String())
}

func limit[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
