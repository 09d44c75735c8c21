package state

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Semior001/newsly/app/store"
	"github.com/Semior001/newsly/pkg/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestStore_DispatchAndSubscribe(t *testing.T) {
	ctx := context.Background()
	s := New(ctx)

	var got []State
	unsub := s.Subscribe(func(st State) { got = append(got, st) })

	s.Dispatch(ctx, SetSubscribed{Subscribed: true})
	s.Dispatch(ctx, BooksRequested{ListName: "x"})
	unsub()
	s.Dispatch(ctx, MoviesRequested{})

	require.Len(t, got, 2)
	assert.True(t, got[0].Subscription.Subscribed)
	assert.False(t, got[0].Books.Loading)
	assert.True(t, got[1].Books.Loading)
	assert.True(t, s.State().Movies.Loading)
}

func TestStore_StateIsACopy(t *testing.T) {
	ctx := context.Background()
	s := New(ctx)
	s.Dispatch(ctx, SectionsLoaded{Sections: map[string][]store.Article{"world": {{URL: "1"}}}})

	st := s.State()
	st.News.SectionStories["arts"] = nil
	delete(st.News.SectionStories, "world")

	assert.Equal(t, map[string][]store.Article{"world": {{URL: "1"}}}, s.State().News.SectionStories)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	ctx := context.Background()
	s := New(ctx)

	wg := sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Dispatch(ctx, SectionLoaded{Section: string(rune('a' + i%26))})
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.State().News.SectionStories, 26)
}

func TestStore_Persistence(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()

	s := New(ctx, WithPersistence(kv))
	s.Dispatch(ctx, LoginSucceeded{User: store.User{ID: "1", Username: "john"}, Token: "local-token"})
	s.Dispatch(ctx, SetSubscribed{Subscribed: true})
	s.Dispatch(ctx, TopStoriesLoaded{Articles: []store.Article{{URL: "1"}}})

	raw, err := kv.Get(ctx, PersistKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"auth": {"user": {"id": "1", "username": "john", "email": ""}, "token": "local-token", "is_authenticated": true},
		"subscription": {"subscribed": true}
	}`, raw)

	restored := New(ctx, WithPersistence(kv)).State()
	assert.True(t, restored.Auth.IsAuthenticated)
	assert.Equal(t, "john", restored.Auth.User.Username)
	assert.True(t, restored.Subscription.Subscribed)
	assert.Empty(t, restored.News.TopStories, "only whitelisted slices survive")

	s.Dispatch(ctx, Logout{})
	restored = New(ctx, WithPersistence(kv)).State()
	assert.False(t, restored.Auth.IsAuthenticated)
	assert.Nil(t, restored.Auth.User)
	assert.True(t, restored.Subscription.Subscribed)
}

func TestStore_RehydrateBroken(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()

	require.NoError(t, kv.Set(ctx, PersistKey, `{"auth": {"user": null, "token": "tkn", "is_authenticated": true}}`))
	st := New(ctx, WithPersistence(kv)).State()
	assert.Equal(t, AuthState{}, st.Auth, "inconsistent auth is not restored")

	require.NoError(t, kv.Set(ctx, PersistKey, `not a json`))
	st = New(ctx, WithPersistence(kv)).State()
	assert.Equal(t, Initial(), st)
}

type failingKV struct{ store.KV }

func (failingKV) Set(context.Context, string, string) error { return errors.New("quota exceeded") }

func TestStore_PersistFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	buf := &bytes.Buffer{}
	lg := slog.New(slog.HandlerOptions{Level: slog.LevelDebug}.NewTextHandler(buf))

	s := New(ctx, WithPersistence(failingKV{KV: store.NewMemory()}), WithLogger(lg))
	s.Dispatch(ctx, SetSubscribed{Subscribed: true})

	assert.True(t, s.State().Subscription.Subscribed)
	assert.Contains(t, buf.String(), "failed to persist state")
}

func TestStore_Middlewares(t *testing.T) {
	ctx := context.Background()
	buf := &bytes.Buffer{}
	lg := slog.New(&logx.Chain{
		Middleware: []logx.Middleware{logx.RequestID},
		Handler:    slog.HandlerOptions{Level: slog.LevelInfo}.NewTextHandler(buf),
	})

	var order []string
	mw := func(name string) Middleware {
		return func(next Dispatcher) Dispatcher {
			return func(ctx context.Context, a Action) {
				order = append(order, name)
				next(ctx, a)
			}
		}
	}

	s := New(ctx, WithMiddleware(RequestID(), Logger(lg), Recover(lg), mw("first"), mw("second")))
	s.Subscribe(func(State) { panic("subscriber failed") })

	assert.NotPanics(t, func() { s.Dispatch(ctx, Logout{}) })
	assert.Equal(t, []string{"first", "second"}, order)

	out := buf.String()
	assert.Contains(t, out, "panic recovered")
	assert.Contains(t, out, "action=auth/LOGOUT")
	assert.Contains(t, out, "request_id=")

	// the store is still usable after a panic
	s.Dispatch(ctx, SetSubscribed{Subscribed: true})
	assert.True(t, s.State().Subscription.Subscribed)
}
