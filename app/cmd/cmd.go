// Package cmd contains commands for the application.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/Semior001/newsly/app/config"
	"github.com/Semior001/newsly/app/nyt"
	"github.com/Semior001/newsly/app/reader"
	"github.com/Semior001/newsly/app/service"
	"github.com/Semior001/newsly/app/state"
	"github.com/Semior001/newsly/app/store"
	"github.com/jessevdk/go-flags"
	"golang.org/x/exp/slog"
)

// ErrNotLoggedIn is returned by commands that need a logged in user.
var ErrNotLoggedIn = errors.New("not logged in, run login or signup first")

// NYTOpts defines parameters of the content API.
type NYTOpts struct {
	APIKey        string
	BaseURL       string
	Timeout       time.Duration
	MaxConcurrent int
}

// CommonOpts defines options shared by all commands.
type CommonOpts struct {
	NYT        NYTOpts
	StorePath  string
	ConfigPath string
	Debug      bool
	Out        io.Writer
}

// CommonCommander is a command that needs common options.
type CommonCommander interface {
	flags.Commander
	SetCommon(CommonOpts)
}

// SetCommon sets common options of the command.
func (c *CommonOpts) SetCommon(opts CommonOpts) { *c = opts }

func (c *CommonOpts) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// app holds dependencies of a command run.
type app struct {
	log      *slog.Logger
	cfg      config.Config
	kv       *store.Bolt
	st       *state.Store
	svc      *service.Service
	accounts *service.Accounts
	favs     *store.Favorites
	reader   *reader.Service
}

// open builds the application from the common options.
func (c *CommonOpts) open(ctx context.Context) (*app, error) {
	lg := slog.Default()

	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	storePath := c.StorePath
	if storePath == "" {
		storePath = config.DataPath()
	}

	kv, err := store.NewBolt(storePath)
	if err != nil {
		return nil, fmt.Errorf("make store: %w", err)
	}

	st := state.New(ctx,
		state.WithLogger(lg.With(slog.String("prefix", "state"))),
		state.WithPersistence(kv),
		state.WithMiddleware(
			state.RequestID(),
			state.Logger(lg.With(slog.String("prefix", "dispatch"))),
			state.Recover(lg.With(slog.String("prefix", "dispatch"))),
		),
	)

	gw := nyt.NewClient(lg.With(slog.String("prefix", "nyt")), nyt.Opts{
		BaseURL:       c.NYT.BaseURL,
		APIKey:        c.NYT.APIKey,
		HTTPClient:    http.Client{Timeout: c.NYT.Timeout},
		MaxConcurrent: c.NYT.MaxConcurrent,
	})

	return &app{
		log:      lg,
		cfg:      cfg,
		kv:       kv,
		st:       st,
		svc:      service.NewService(lg.With(slog.String("prefix", "service")), gw, st),
		accounts: service.NewAccounts(lg.With(slog.String("prefix", "accounts")), store.NewAccounts(kv), st),
		favs:     store.NewFavorites(kv),
		reader: reader.NewService(
			lg.With(slog.String("prefix", "reader")),
			&http.Client{Timeout: c.NYT.Timeout},
			reader.NewExtractor(c.Debug),
		),
	}, nil
}

func (a *app) close() {
	if err := a.kv.Close(); err != nil {
		a.log.Error("close bolt store", slog.Any("err", err))
	}
}

// username returns the name of the logged in user.
func (a *app) username() (string, error) {
	auth := a.st.State().Auth
	if !auth.IsAuthenticated {
		return "", ErrNotLoggedIn
	}
	return auth.User.Username, nil
}

// markSaved makes listing rows of articles, marking favorites of the logged in user.
func (a *app) markSaved(ctx context.Context, articles []store.Article) []articleRow {
	res := rows(articles)

	username, err := a.username()
	if err != nil {
		return res
	}

	for i := range res {
		saved, err := a.favs.Has(ctx, username, res[i].URL)
		if err != nil {
			a.log.WarnCtx(ctx, "failed to check favorite", slog.String("url", res[i].URL), slog.Any("err", err))
			continue
		}
		res[i].Saved = saved
	}

	return res
}

// run opens the application, calls fn and closes the application.
func (c *CommonOpts) run(fn func(ctx context.Context, a *app) error) error {
	ctx := context.Background()

	a, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	return fn(ctx, a)
}
