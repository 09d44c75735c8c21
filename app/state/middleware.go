package state

import (
	"context"
	"time"

	"github.com/Semior001/newsly/pkg/logx"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Logger is a middleware that logs all dispatched actions.
func Logger(lg *slog.Logger) Middleware {
	return func(next Dispatcher) Dispatcher {
		return func(ctx context.Context, a Action) {
			start := time.Now()
			next(ctx, a)

			if lg.Handler().Enabled(ctx, slog.LevelDebug) {
				lg.DebugCtx(ctx, "action dispatched",
					slog.String("action", a.Type()),
					slog.Any("payload", a),
					slog.Duration("took", time.Since(start)))
				return
			}

			lg.InfoCtx(ctx, "action dispatched", slog.String("action", a.Type()))
		}
	}
}

// Recover is a middleware that recovers from panics in reducers and subscribers.
func Recover(lg *slog.Logger) Middleware {
	return func(next Dispatcher) Dispatcher {
		return func(ctx context.Context, a Action) {
			defer func() {
				if r := recover(); r != nil {
					lg.ErrorCtx(ctx, "panic recovered",
						slog.String("action", a.Type()),
						slog.Any("panic", r))
				}
			}()

			next(ctx, a)
		}
	}
}

// RequestID is a middleware that adds a request id to context,
// unless there is one already.
func RequestID() Middleware {
	return func(next Dispatcher) Dispatcher {
		return func(ctx context.Context, a Action) {
			if _, ok := logx.RequestIDFromContext(ctx); !ok {
				ctx = logx.ContextWithRequestID(ctx, uuid.New().String())
			}

			next(ctx, a)
		}
	}
}
