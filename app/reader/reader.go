// Package reader fetches article pages and extracts their readable text
// for the detail view.
package reader

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Semior001/newsly/app/store"
	cache "github.com/go-pkgz/expirable-cache/v2"
	"golang.org/x/exp/slog"
)

// ErrBadURL is returned when the article URL is not an absolute http(s) one.
var ErrBadURL = errors.New("article url must be an absolute http(s) url")

// Document is an article with its readable text.
type Document struct {
	store.Article
	SiteName string `json:"site_name,omitempty"`
	Content  string `json:"content"`
}

// Service loads articles for reading.
type Service struct {
	log       *slog.Logger
	cl        *http.Client
	extractor Extractor
	cache     cache.Cache[string, Document]
}

// NewService makes a new Service.
func NewService(lg *slog.Logger, cl *http.Client, extractor Extractor) *Service {
	return &Service{
		log:       lg,
		cl:        cl,
		extractor: extractor,
		cache: cache.NewCache[string, Document]().
			WithLRU().
			WithMaxKeys(100),
	}
}

// CacheStat returns stats of the document cache.
func (s *Service) CacheStat() cache.Stats { return s.cache.Stat() }

// GetArticle loads the page and extracts the article from it.
func (s *Service) GetArticle(ctx context.Context, u string) (Document, error) {
	pageURL, err := url.Parse(u)
	if err != nil || !pageURL.IsAbs() || (pageURL.Scheme != "http" && pageURL.Scheme != "https") {
		return Document{}, ErrBadURL
	}

	if doc, ok := s.cache.Get(u); ok {
		return doc, nil
	}

	s.log.DebugCtx(ctx, "loading article", slog.String("url", u))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return Document{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.cl.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.log.WarnCtx(ctx, "failed to close response body", slog.Any("err", err))
		}
	}()

	ok := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	if !ok {
		return Document{}, fmt.Errorf("bad status code: %d", resp.StatusCode)
	}

	doc, err := s.extractor.Extract(resp.Body, pageURL)
	if err != nil {
		return Document{}, fmt.Errorf("extract article: %w", err)
	}

	s.cache.Set(u, doc, 0)

	return doc, nil
}
