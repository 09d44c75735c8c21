// Package search implements the controller of the search view: it keeps
// the query, filters and page, debounces edits and decides when to run
// the search.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Semior001/newsly/app/service"
	"github.com/Semior001/newsly/pkg/debounce"
	cache "github.com/go-pkgz/expirable-cache/v2"
	"github.com/samber/lo"
	"golang.org/x/exp/slog"
)

// ErrCooldown is returned when a search is submitted too soon after the previous one.
var ErrCooldown = errors.New("search submitted too often")

// CooldownNotice is published when a submit is suppressed.
const CooldownNotice = "Please wait a moment before searching again."

const dateLayout = "2006-01-02"

const submitKey = "submit"

//go:generate moq -out mock_searcher.go . Searcher

// Searcher runs searches and keeps their results.
type Searcher interface {
	FetchSearchArticles(ctx context.Context, p service.SearchParams)
	ResetSearch(ctx context.Context)
	SetSearchPage(ctx context.Context, page int)
}

// Opts defines parameters of the Controller.
type Opts struct {
	Debounce time.Duration // delay of query and filter edits
	Cooldown time.Duration // minimal interval between submits, 0 to disable
	Notify   func(msg string)
}

// Controller owns the search parameters. Query and filter edits are
// debounced and reset the page to the first one, page changes run
// immediately. Starting a search cancels the one in flight.
type Controller struct {
	log      *slog.Logger
	svc      Searcher
	timer    *debounce.Timer
	cooldown time.Duration
	gate     cache.Cache[string, struct{}]
	notify   func(msg string)

	mu     sync.Mutex
	gen       uint64 // bumped whenever the pending search is dropped or replaced
	scheduled bool   // a debounced search waits to run
	params service.SearchParams
	cancel context.CancelFunc
	wg     sync.WaitGroup
	closed bool
}

// NewController makes a new Controller.
func NewController(lg *slog.Logger, svc Searcher, opts Opts) *Controller {
	if opts.Notify == nil {
		opts.Notify = func(string) {}
	}

	return &Controller{
		log:      lg,
		svc:      svc,
		timer:    debounce.New(opts.Debounce),
		cooldown: opts.Cooldown,
		gate:     cache.NewCache[string, struct{}]().WithMaxKeys(1),
		notify:   opts.Notify,
		params:   service.SearchParams{Page: 1},
	}
}

// Params returns a copy of the current search parameters.
func (c *Controller) Params() service.SearchParams {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// SetQuery changes the query text. A blank query clears the search.
func (c *Controller) SetQuery(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.params.Query = q
	if strings.TrimSpace(q) == "" && !c.hasFilters() {
		c.clearLocked()
		return
	}

	c.scheduleLocked()
}

// SetTopic changes the section filter, empty to drop it.
func (c *Controller) SetTopic(topic string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.params.Topic = strings.TrimSpace(topic)
	c.filtersChangedLocked()
}

// ToggleKeyword adds the keyword to the filter, or removes it if it is already there.
func (c *Controller) ToggleKeyword(kw string) {
	kw = strings.TrimSpace(kw)
	if kw == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if lo.Contains(c.params.Keywords, kw) {
		c.params.Keywords = lo.Without(c.params.Keywords, kw)
	} else {
		c.params.Keywords = append(c.params.Keywords, kw)
	}

	c.filtersChangedLocked()
}

// SetDateRange changes the publication date filter, dates are YYYY-MM-DD
// and may be empty.
func (c *Controller) SetDateRange(start, end string) error {
	if err := ValidateDateRange(start, end); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.params.StartDate, c.params.EndDate = start, end
	c.filtersChangedLocked()
	return nil
}

// SetPage runs the search for the page immediately. With nothing to
// search for, only the page is recorded.
func (c *Controller) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dropPendingLocked()
	c.params.Page = lo.Max([]int{page, 1})

	if !c.activeLocked() {
		c.svc.SetSearchPage(context.Background(), c.params.Page)
		return
	}

	c.runLocked()
}

// Submit runs the search for the first page immediately. Submits within
// the cooldown of the previous one are suppressed with ErrCooldown.
func (c *Controller) Submit() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cooldown > 0 {
		if _, ok := c.gate.Get(submitKey); ok {
			c.log.Debug("search submit suppressed by cooldown")
			c.notify(CooldownNotice)
			return ErrCooldown
		}
		c.gate.Set(submitKey, struct{}{}, c.cooldown)
	}

	c.dropPendingLocked()
	c.params.Page = 1
	c.runLocked()
	return nil
}

// Clear drops the query, cancels pending and running searches and resets results.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.params.Query = ""
	c.clearLocked()
}

// Flush runs the pending debounced search right away, if there is one.
func (c *Controller) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.scheduled {
		return
	}

	c.dropPendingLocked()
	if c.activeLocked() {
		c.runLocked()
	}
}

// Wait blocks until running searches finish.
func (c *Controller) Wait() { c.wg.Wait() }

// Close cancels pending and running searches and waits for them to finish.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.dropPendingLocked()
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()

	c.wg.Wait()
}

// ValidateDateRange checks that both dates are empty or YYYY-MM-DD and
// that the range is not reversed.
func ValidateDateRange(start, end string) error {
	for _, d := range []string{start, end} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, d); err != nil {
			return fmt.Errorf("%w: date %q is not in YYYY-MM-DD format", service.ErrValidation, d)
		}
	}

	if start != "" && end != "" && start > end {
		return fmt.Errorf("%w: start date %s is after end date %s", service.ErrValidation, start, end)
	}

	return nil
}

func (c *Controller) filtersChangedLocked() {
	if !c.activeLocked() {
		c.clearLocked()
		return
	}
	c.scheduleLocked()
}

func (c *Controller) clearLocked() {
	c.dropPendingLocked()
	c.params.Page = 1
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.svc.ResetSearch(context.Background())
}

func (c *Controller) scheduleLocked() {
	c.params.Page = 1
	c.gen++
	gen := c.gen
	c.scheduled = true
	c.timer.Trigger(func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		// the timer may fire while an edit or clear holds the lock
		if gen != c.gen {
			return
		}
		c.scheduled = false
		if c.activeLocked() {
			c.runLocked()
		}
	})
}

// dropPendingLocked cancels the debounced search, including a callback
// that has already fired and waits for the lock.
func (c *Controller) dropPendingLocked() {
	c.gen++
	c.scheduled = false
	c.timer.Stop()
}

func (c *Controller) runLocked() {
	if c.closed {
		return
	}

	if c.cancel != nil {
		c.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	p := c.snapshot()
	c.log.Debug("running search",
		slog.String("query", p.Query),
		slog.Int("page", p.Page),
		slog.String("topic", p.Topic),
		slog.Any("keywords", p.Keywords))

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.svc.FetchSearchArticles(ctx, p)
	}()
}

func (c *Controller) activeLocked() bool {
	return strings.TrimSpace(c.params.Query) != "" || c.hasFilters()
}

func (c *Controller) hasFilters() bool {
	p := c.params
	return p.Topic != "" || len(p.Keywords) > 0 || p.StartDate != "" || p.EndDate != ""
}

func (c *Controller) snapshot() service.SearchParams {
	p := c.params
	p.Keywords = append([]string(nil), c.params.Keywords...)
	return p
}
