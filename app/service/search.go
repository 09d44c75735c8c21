package service

import (
	"context"
	"strings"

	"github.com/Semior001/newsly/app/nyt"
	"github.com/Semior001/newsly/app/state"
	"github.com/samber/lo"
	"golang.org/x/exp/slog"
)

// Pagination of the article search. The API never returns more than
// MaxPages pages of ResultsPerPage results, regardless of the hit count.
const (
	ResultsPerPage = 10
	MaxPages       = 100
)

// SearchParams defines a search as the user sees it.
type SearchParams struct {
	Query     string
	Page      int // 1-based
	Topic     string
	Keywords  []string
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

// TotalPages returns the number of pages for the hit count, at least one.
func TotalPages(hits int) int {
	pages := (hits + ResultsPerPage - 1) / ResultsPerPage
	return lo.Clamp(pages, 1, MaxPages)
}

// FetchSearchArticles runs the article search. Every run is tagged with
// a new sequence number, results of older runs are dropped by the state.
func (s *Service) FetchSearchArticles(ctx context.Context, p SearchParams) {
	ctx = withRequestID(ctx)

	seq := s.seq.Add(1)
	s.st.Dispatch(ctx, state.SearchRequested{Seq: seq})

	page := lo.Max([]int{p.Page, 1})
	q := nyt.SearchQuery{
		Query:       p.Query,
		Page:        page - 1,
		FilterQuery: nyt.BuildFilterQuery(p.Topic, p.Keywords),
		BeginDate:   strings.ReplaceAll(p.StartDate, "-", ""),
		EndDate:     strings.ReplaceAll(p.EndDate, "-", ""),
	}

	// the endpoint requires a non-empty query
	if strings.TrimSpace(q.Query) == "" {
		q.Query = " "
	}

	res, err := s.gw.Search(ctx, q)
	if err != nil {
		s.log.WarnCtx(ctx, "failed to search articles",
			slog.Uint64("seq", seq),
			slog.Any("err", err))
		s.st.Dispatch(ctx, state.SearchFailed{Seq: seq, Err: err.Error()})
		return
	}

	s.log.DebugCtx(ctx, "search completed",
		slog.Uint64("seq", seq),
		slog.Int("hits", res.Hits),
		slog.Int("articles", len(res.Articles)))

	s.st.Dispatch(ctx, state.SearchSucceeded{
		Seq:        seq,
		Articles:   res.Articles,
		Page:       page,
		TotalPages: TotalPages(res.Hits),
	})
}

// ResetSearch clears results and invalidates searches in flight.
func (s *Service) ResetSearch(ctx context.Context) {
	s.st.Dispatch(withRequestID(ctx), state.SearchReset{Seq: s.seq.Add(1)})
}

// SetSearchPage records the page without fetching.
func (s *Service) SetSearchPage(ctx context.Context, page int) {
	s.st.Dispatch(withRequestID(ctx), state.SearchPageChanged{Page: lo.Max([]int{page, 1})})
}
