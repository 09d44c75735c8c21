package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/Semior001/newsly/app/config"
	"github.com/Semior001/newsly/app/search"
	"github.com/Semior001/newsly/app/service"
	"github.com/Semior001/newsly/app/state"
	"github.com/samber/lo"
	"golang.org/x/exp/slog"
)

const searchUsage = `type a query to search, or a command:
  :page N          go to page N
  :topic [NAME]    filter by section, no name to drop the filter
  :kw NAME         toggle a keyword filter
  :dates FROM TO   filter by publication dates, YYYY-MM-DD or - for none
  :submit          search right now
  :read N          print the readable text of article N
  :clear           clear the query and results
  :q               quit
`

// searchHelp lists commands and the configured filters.
func searchHelp(cfg config.Config) string {
	sb := strings.Builder{}
	sb.WriteString(searchUsage)
	if len(cfg.Topics) > 0 {
		sb.WriteString("topics: " + strings.Join(cfg.Topics, ", ") + "\n")
	}
	if len(cfg.Keywords) > 0 {
		sb.WriteString("keywords: " + strings.Join(cfg.Keywords, ", ") + "\n")
	}
	return sb.String()
}

// Search is a command to search articles.
type Search struct {
	CommonOpts
	Topic       string   `long:"topic" description:"section to search in"`
	Keywords    []string `long:"keyword" description:"keyword filter, may be repeated"`
	From        string   `long:"from" description:"published since, YYYY-MM-DD"`
	To          string   `long:"to" description:"published until, YYYY-MM-DD"`
	Page        int      `long:"page" default:"1" description:"results page"`
	Interactive bool     `long:"interactive" short:"i" description:"read queries and commands from stdin"`
	Args        struct {
		Query []string `positional-arg-name:"query"`
	} `positional-args:"yes"`

	in io.Reader
}

// Execute runs the command.
func (s *Search) Execute(_ []string) error {
	if err := search.ValidateDateRange(s.From, s.To); err != nil {
		return err
	}

	params := service.SearchParams{
		Query:     strings.Join(s.Args.Query, " "),
		Page:      s.Page,
		Topic:     s.Topic,
		Keywords:  s.Keywords,
		StartDate: s.From,
		EndDate:   s.To,
	}

	if s.Interactive {
		return s.run(func(ctx context.Context, a *app) error { return s.interactive(ctx, a, params) })
	}

	if idle(params) {
		return fmt.Errorf("%w: nothing to search for, pass a query or a filter", service.ErrValidation)
	}

	return s.run(func(ctx context.Context, a *app) error {
		a.svc.FetchSearchArticles(ctx, params)
		res := a.st.State().Search
		return renderSearch(s.out(), res, a.markSaved(ctx, res.Articles))
	})
}

func (s *Search) interactive(ctx context.Context, a *app, params service.SearchParams) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := &syncWriter{w: s.out()}

	ctrl := search.NewController(a.log.With(slog.String("prefix", "search")), a.svc, search.Opts{
		Debounce: a.cfg.Search.Debounce,
		Cooldown: a.cfg.Search.Cooldown,
		Notify:   func(msg string) { _, _ = fmt.Fprintln(out, msg) },
	})
	defer ctrl.Close()

	var mu sync.Mutex
	loading := false
	unsubscribe := a.st.Subscribe(func(st state.State) {
		mu.Lock()
		defer mu.Unlock()

		// render once per finished search
		wasLoading := loading
		loading = st.Search.Loading
		if !wasLoading || loading {
			return
		}
		if err := renderSearch(out, st.Search, a.markSaved(ctx, st.Search.Articles)); err != nil {
			a.log.WarnCtx(ctx, "failed to render search results", slog.Any("err", err))
		}
	})
	defer unsubscribe()

	if _, err := io.WriteString(out, searchHelp(a.cfg)); err != nil {
		return fmt.Errorf("print help: %w", err)
	}

	if err := s.applyParams(ctrl, params); err != nil {
		return err
	}

	if idle(params) {
		s.discover(ctx, a, out)
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(s.input())
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			a.log.WarnCtx(ctx, "caught signal, stopping")
			return nil
		case line, ok := <-lines:
			if !ok {
				// input is over, let the last typed query run
				ctrl.Flush()
				ctrl.Wait()
				return nil
			}

			if fields := strings.Fields(line); len(fields) > 0 && fields[0] == ":read" {
				if err := s.readArticle(ctx, a, out, fields[1:]); err != nil {
					_, _ = fmt.Fprintln(out, err)
				}
				continue
			}

			quit, err := handleSearchLine(ctrl, a.cfg, line)
			switch {
			case quit:
				return nil
			case errors.Is(err, search.ErrCooldown):
				// notice is already printed
			case err != nil:
				_, _ = fmt.Fprintln(out, err)
			case strings.TrimSpace(line) == ":clear":
				s.discover(ctx, a, out)
			}
		}
	}
}

// applyParams seeds the controller with the parameters from flags.
func (s *Search) applyParams(ctrl searchController, p service.SearchParams) error {
	if p.Topic != "" {
		ctrl.SetTopic(p.Topic)
	}
	for _, kw := range p.Keywords {
		ctrl.ToggleKeyword(kw)
	}
	if p.StartDate != "" || p.EndDate != "" {
		if err := ctrl.SetDateRange(p.StartDate, p.EndDate); err != nil {
			return err
		}
	}
	if p.Query != "" {
		ctrl.SetQuery(p.Query)
	}
	return nil
}

// discover prints the mixed feed of random search sections.
func (s *Search) discover(ctx context.Context, a *app, w io.Writer) {
	a.svc.FetchMixed(ctx, a.cfg.SearchSections)
	news := a.st.State().News
	if err := renderFeed(w, "discover", news, state.FeedMixed, a.markSaved(ctx, news.MixedStories)); err != nil {
		a.log.WarnCtx(ctx, "failed to render mixed feed", slog.Any("err", err))
	}
}

// readArticle prints the article by its number in the search results,
// or in the mixed feed when there are no results.
func (s *Search) readArticle(ctx context.Context, a *app, w io.Writer, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: :read N")
	}

	st := a.st.State()
	articles := st.Search.Articles
	if len(articles) == 0 {
		articles = st.News.MixedStories
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(articles) {
		return fmt.Errorf("no article %q in the list", args[0])
	}

	u := articles[n-1].URL
	doc, err := a.reader.GetArticle(ctx, u)
	if err != nil {
		return fmt.Errorf("read article: %w", err)
	}

	a.log.DebugCtx(ctx, "article read", slog.String("url", u), slog.Any("cache", a.reader.CacheStat()))
	return render(w, "document", doc)
}

func idle(p service.SearchParams) bool {
	return strings.TrimSpace(p.Query) == "" && p.Topic == "" && len(p.Keywords) == 0 &&
		p.StartDate == "" && p.EndDate == ""
}

func (s *Search) input() io.Reader {
	if s.in == nil {
		return os.Stdin
	}
	return s.in
}

type searchController interface {
	SetQuery(q string)
	SetTopic(topic string)
	ToggleKeyword(kw string)
	SetDateRange(start, end string) error
	SetPage(page int)
	Submit() error
	Clear()
}

// handleSearchLine applies a line of the interactive search to the controller.
// Topics and keywords are checked against the configured ones, if any.
func handleSearchLine(ctrl searchController, cfg config.Config, line string) (quit bool, err error) {
	if !strings.HasPrefix(line, ":") {
		ctrl.SetQuery(line)
		return false, nil
	}

	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case ":q", ":quit":
		return true, nil
	case ":page":
		if len(args) != 1 {
			return false, errors.New("usage: :page N")
		}
		page, err := strconv.Atoi(args[0])
		if err != nil || page < 1 {
			return false, fmt.Errorf("invalid page %q", args[0])
		}
		ctrl.SetPage(page)
	case ":topic":
		topic := strings.Join(args, " ")
		if topic != "" {
			if topic, err = lookupOption("topic", cfg.Topics, topic); err != nil {
				return false, err
			}
		}
		ctrl.SetTopic(topic)
	case ":kw":
		if len(args) == 0 {
			return false, errors.New("usage: :kw NAME")
		}
		kw, err := lookupOption("keyword", cfg.Keywords, strings.Join(args, " "))
		if err != nil {
			return false, err
		}
		ctrl.ToggleKeyword(kw)
	case ":dates":
		if len(args) != 2 {
			return false, errors.New("usage: :dates FROM TO")
		}
		for i := range args {
			if args[i] == "-" {
				args[i] = ""
			}
		}
		return false, ctrl.SetDateRange(args[0], args[1])
	case ":submit":
		return false, ctrl.Submit()
	case ":clear":
		ctrl.Clear()
	default:
		return false, fmt.Errorf("unknown command %s", cmd)
	}

	return false, nil
}

// lookupOption returns the configured spelling of the name.
// Any name passes when nothing is configured.
func lookupOption(kind string, options []string, name string) (string, error) {
	if len(options) == 0 {
		return name, nil
	}

	opt, ok := lo.Find(options, func(o string) bool { return strings.EqualFold(o, name) })
	if !ok {
		return "", fmt.Errorf("%w: unknown %s %q, available: %s",
			service.ErrValidation, kind, name, strings.Join(options, ", "))
	}

	return opt, nil
}

// syncWriter serializes writes of concurrent renders.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Write(p)
}
