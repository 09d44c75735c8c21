// Package state implements the single state tree of the application:
// typed actions, pure reducers per slice, change subscriptions and
// persistence of the whitelisted slices.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Semior001/newsly/app/store"
	"github.com/Semior001/newsly/pkg/logx"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slog"
)

// PersistKey is the KV key the whitelisted slices are kept under.
const PersistKey = "persist:root"

// Dispatcher applies an action.
type Dispatcher func(ctx context.Context, a Action)

// Middleware wraps a Dispatcher.
type Middleware func(next Dispatcher) Dispatcher

// Options defines options for Store.
type Options struct {
	Logger      *slog.Logger
	KV          store.KV
	Middlewares []Middleware
}

// Option defines a function that configures Store.
type Option func(*Options)

// WithLogger sets the logger to use.
func WithLogger(lg *slog.Logger) Option {
	return func(o *Options) { o.Logger = lg }
}

// WithPersistence keeps auth and subscription slices in the given KV.
func WithPersistence(kv store.KV) Option {
	return func(o *Options) { o.KV = kv }
}

// WithMiddleware wraps dispatching with the given middlewares,
// the first one is the outermost.
func WithMiddleware(mws ...Middleware) Option {
	return func(o *Options) { o.Middlewares = append(o.Middlewares, mws...) }
}

// Store holds the state tree. Reducer passes are serialized,
// subscribers are notified after each pass with a copy of the state.
type Store struct {
	opts Options

	mu            sync.Mutex
	state         State
	lastPersisted string

	subsMu  sync.RWMutex
	subs    map[uint64]func(State)
	nextSub uint64

	dispatch Dispatcher
}

// New makes a new Store and restores the persisted slices, if any.
func New(ctx context.Context, opts ...Option) *Store {
	s := &Store{
		opts:  Options{Logger: slog.New(logx.NoOp())},
		state: Initial(),
		subs:  map[uint64]func(State){},
	}

	for _, opt := range opts {
		opt(&s.opts)
	}

	s.dispatch = s.apply
	for i := len(s.opts.Middlewares) - 1; i >= 0; i-- {
		s.dispatch = s.opts.Middlewares[i](s.dispatch)
	}

	if s.opts.KV != nil {
		s.rehydrate(ctx)
	}

	return s
}

// Dispatch applies the action to the state and notifies subscribers.
func (s *Store) Dispatch(ctx context.Context, a Action) { s.dispatch(ctx, a) }

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn to be called after every dispatched action.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) apply(ctx context.Context, a Action) {
	snapshot := s.reduce(ctx, a)

	s.subsMu.RLock()
	subs := maps.Values(s.subs)
	s.subsMu.RUnlock()

	for _, fn := range subs {
		fn(snapshot.clone())
	}
}

func (s *Store) reduce(ctx context.Context, a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, a)
	if s.opts.KV != nil {
		s.persist(ctx)
	}

	return s.state
}

// persist writes whitelisted slices when they have changed, must be called under lock.
// Write failures are logged and the state is kept.
func (s *Store) persist(ctx context.Context) {
	bts, err := json.Marshal(persisted{Auth: s.state.Auth, Subscription: s.state.Subscription})
	if err != nil {
		s.opts.Logger.ErrorCtx(ctx, "failed to marshal persisted state", slog.Any("err", err))
		return
	}

	if string(bts) == s.lastPersisted {
		return
	}

	if err = s.opts.KV.Set(ctx, PersistKey, string(bts)); err != nil {
		s.opts.Logger.WarnCtx(ctx, "failed to persist state", slog.Any("err", err))
		return
	}

	s.lastPersisted = string(bts)
}

func (s *Store) rehydrate(ctx context.Context) {
	p, err := s.loadPersisted(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.opts.Logger.WarnCtx(ctx, "failed to restore persisted state, starting clean", slog.Any("err", err))
		}
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Subscription = p.Subscription
	// keep the auth invariant even if the stored blob is inconsistent
	if p.Auth.User != nil && p.Auth.Token != "" {
		s.state = Reduce(s.state, LoginSucceeded{User: *p.Auth.User, Token: p.Auth.Token})
	}

	bts, _ := json.Marshal(persisted{Auth: s.state.Auth, Subscription: s.state.Subscription})
	s.lastPersisted = string(bts)

	s.opts.Logger.DebugCtx(ctx, "restored persisted state",
		slog.Bool("authenticated", s.state.Auth.IsAuthenticated),
		slog.Bool("subscribed", s.state.Subscription.Subscribed))
}

func (s *Store) loadPersisted(ctx context.Context) (persisted, error) {
	raw, err := s.opts.KV.Get(ctx, PersistKey)
	if err != nil {
		return persisted{}, fmt.Errorf("get persisted state: %w", err)
	}

	var p persisted
	if err = json.Unmarshal([]byte(raw), &p); err != nil {
		return persisted{}, fmt.Errorf("unmarshal persisted state: %w", err)
	}

	return p, nil
}
