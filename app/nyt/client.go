// Package nyt implements a client to the New York Times content API.
// Responses are normalized into store models before they leave the package.
package nyt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Semior001/newsly/app/store"
	"github.com/Semior001/newsly/pkg/logx"
	"github.com/go-pkgz/requester"
	"github.com/go-pkgz/requester/middleware"
	"github.com/samber/lo"
	"golang.org/x/exp/slog"
)

// DefaultBaseURL is the root of the NYT API.
const DefaultBaseURL = "https://api.nytimes.com/svc/"

// HomeSection is the section of the front page top stories.
const HomeSection = "home"

// ErrBadStatus is returned when the API responds with a non-2xx status.
var ErrBadStatus = errors.New("bad status code")

// Opts defines parameters of the Client.
type Opts struct {
	BaseURL       string
	APIKey        string
	HTTPClient    http.Client
	MaxConcurrent int // max requests in flight, 0 for unlimited
}

// Client makes requests to the NYT API.
// It does not retry and does not cache.
type Client struct {
	log     *slog.Logger
	rq      *requester.Requester
	baseURL string
	apiKey  string
}

// NewClient makes a new Client.
func NewClient(lg *slog.Logger, opts Opts) *Client {
	mws := []middleware.RoundTripperHandler{
		logx.LoggingRoundTripper(lg, logx.RoundTripperOpts{
			Level:        slog.LevelDebug,
			SecretParams: []string{"api-key"},
		}),
		middleware.JSON,
	}

	if opts.MaxConcurrent > 0 {
		mws = append(mws, middleware.MaxConcurrent(opts.MaxConcurrent))
	}

	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	return &Client{
		log:     lg,
		rq:      requester.New(opts.HTTPClient, mws...),
		baseURL: strings.TrimSuffix(opts.BaseURL, "/") + "/",
		apiKey:  opts.APIKey,
	}
}

// TopStories returns top stories of the section, HomeSection for the front page.
func (c *Client) TopStories(ctx context.Context, section string) ([]store.Article, error) {
	var resp topStoriesResponse
	path := fmt.Sprintf("topstories/v2/%s.json", url.PathEscape(section))
	if err := c.get(ctx, path, url.Values{}, &resp); err != nil {
		return nil, fmt.Errorf("get top stories of %s: %w", section, err)
	}

	return lo.Map(resp.Results, func(s topStory, _ int) store.Article { return normalizeTopStory(s) }), nil
}

// MostPopular returns the most viewed articles for the last day.
func (c *Client) MostPopular(ctx context.Context) ([]store.Article, error) {
	var resp mostPopularResponse
	if err := c.get(ctx, "mostpopular/v2/viewed/1.json", url.Values{}, &resp); err != nil {
		return nil, fmt.Errorf("get most popular: %w", err)
	}

	return lo.Map(resp.Results, func(p popularItem, _ int) store.Article { return normalizePopular(p) }), nil
}

// SearchResult is a page of the article search.
type SearchResult struct {
	Articles []store.Article
	Hits     int
}

// Search runs a full-text article search.
func (c *Client) Search(ctx context.Context, q SearchQuery) (SearchResult, error) {
	var resp searchResponse
	if err := c.get(ctx, "search/v2/articlesearch.json", q.values(), &resp); err != nil {
		return SearchResult{}, fmt.Errorf("search articles: %w", err)
	}

	return SearchResult{
		Articles: lo.Map(resp.Response.Docs, func(d searchDoc, _ int) store.Article { return normalizeSearchDoc(d) }),
		Hits:     resp.hits(),
	}, nil
}

// BestSellers returns the current best-seller list.
func (c *Client) BestSellers(ctx context.Context, list string) ([]store.Book, error) {
	var resp booksResponse
	path := fmt.Sprintf("books/v3/lists/current/%s.json", url.PathEscape(list))
	if err := c.get(ctx, path, url.Values{}, &resp); err != nil {
		return nil, fmt.Errorf("get best sellers of %s: %w", list, err)
	}

	if resp.Results == nil {
		return []store.Book{}, nil
	}

	return lo.Map(resp.Results.Books, func(b rawBook, _ int) store.Book { return normalizeBook(b) }), nil
}

// MovieReviews returns recent movie reviews.
func (c *Client) MovieReviews(ctx context.Context) ([]store.Review, error) {
	var resp reviewsResponse
	if err := c.get(ctx, "movies/v2/reviews/search.json", url.Values{}, &resp); err != nil {
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}

	return lo.Map(resp.Results, func(r rawReview, _ int) store.Review { return normalizeReview(r) }), nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, dst any) error {
	params.Set("api-key", c.apiKey)
	u := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.rq.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.WarnCtx(ctx, "failed to close response body", slog.Any("err", err))
		}
	}()

	ok := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	if !ok {
		return fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
