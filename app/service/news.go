package service

import (
	"context"

	"github.com/Semior001/newsly/app/nyt"
	"github.com/Semior001/newsly/app/state"
	"github.com/Semior001/newsly/app/store"
	"github.com/samber/lo"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

// FetchTopStories loads the front page top stories.
func (s *Service) FetchTopStories(ctx context.Context) {
	ctx = withRequestID(ctx)
	s.st.Dispatch(ctx, state.NewsRequested{Feed: state.FeedTopStories})

	articles, err := s.gw.TopStories(ctx, nyt.HomeSection)
	if err != nil {
		s.log.WarnCtx(ctx, "failed to fetch top stories", slog.Any("err", err))
		s.st.Dispatch(ctx, state.NewsFailed{Feed: state.FeedTopStories, Err: err.Error()})
		return
	}

	s.st.Dispatch(ctx, state.TopStoriesLoaded{Articles: limit(articles, TopStoriesLimit)})
}

// FetchPopularStories loads the most viewed stories.
func (s *Service) FetchPopularStories(ctx context.Context) {
	ctx = withRequestID(ctx)
	s.st.Dispatch(ctx, state.NewsRequested{Feed: state.FeedPopular})

	articles, err := s.gw.MostPopular(ctx)
	if err != nil {
		s.log.WarnCtx(ctx, "failed to fetch most popular stories", slog.Any("err", err))
		s.st.Dispatch(ctx, state.NewsFailed{Feed: state.FeedPopular, Err: err.Error()})
		return
	}

	s.st.Dispatch(ctx, state.PopularLoaded{Articles: limit(articles, PopularLimit)})
}

// FetchSectionStories loads stories of every section in parallel.
// A failed section gets an empty list and does not fail the others,
// all sections are dispatched at once.
func (s *Service) FetchSectionStories(ctx context.Context, sections []string) {
	ctx = withRequestID(ctx)
	s.st.Dispatch(ctx, state.NewsRequested{Feed: state.FeedSections})

	sections = lo.Uniq(sections)
	results, _ := s.fetchSections(ctx, sections)

	merged := make(map[string][]store.Article, len(sections))
	for i, section := range sections {
		merged[section] = limit(results[i], TopStoriesLimit)
	}

	s.st.Dispatch(ctx, state.SectionsLoaded{Sections: merged})
}

// FetchMixed loads the feed of the idle search view: a few random
// stories of a few random sections, shuffled. Failed sections are
// skipped, the feed fails only if every section failed.
func (s *Service) FetchMixed(ctx context.Context, sections []string) {
	ctx = withRequestID(ctx)
	s.st.Dispatch(ctx, state.NewsRequested{Feed: state.FeedMixed})

	picked := lo.Samples(lo.Uniq(sections), MixedSections)
	results, failed := s.fetchSections(ctx, picked)
	if len(picked) > 0 && failed == len(picked) {
		s.st.Dispatch(ctx, state.NewsFailed{Feed: state.FeedMixed, Err: "failed to load any of the sections"})
		return
	}

	var mixed []store.Article
	for _, articles := range results {
		mixed = append(mixed, lo.Samples(articles, MixedPerSection)...)
	}

	s.log.DebugCtx(ctx, "mixed feed loaded",
		slog.Any("sections", picked),
		slog.Int("articles", len(mixed)))

	s.st.Dispatch(ctx, state.MixedLoaded{Articles: lo.Shuffle(mixed)})
}

// fetchSections loads top stories of the sections in parallel, results
// keep the order of sections. A failed section gets an empty list.
func (s *Service) fetchSections(ctx context.Context, sections []string) (results [][]store.Article, failed int) {
	results = make([][]store.Article, len(sections))
	errs := make([]error, len(sections))

	ewg, gctx := errgroup.WithContext(ctx)
	for i, section := range sections {
		i, section := i, section
		ewg.Go(func() error {
			articles, err := s.gw.TopStories(gctx, section)
			if err != nil {
				s.log.WarnCtx(gctx, "failed to fetch section stories, leaving it empty",
					slog.String("section", section),
					slog.Any("err", err))
				results[i], errs[i] = []store.Article{}, err
				return nil
			}

			results[i] = articles
			return nil
		})
	}

	// goroutines never return errors
	_ = ewg.Wait()

	return results, lo.CountBy(errs, func(err error) bool { return err != nil })
}

// FetchSingleSection refreshes one section, keeping the others.
func (s *Service) FetchSingleSection(ctx context.Context, section string) {
	ctx = withRequestID(ctx)
	feed := state.SectionFeed(section)
	s.st.Dispatch(ctx, state.NewsRequested{Feed: feed})

	articles, err := s.gw.TopStories(ctx, section)
	if err != nil {
		s.log.WarnCtx(ctx, "failed to fetch section stories",
			slog.String("section", section),
			slog.Any("err", err))
		s.st.Dispatch(ctx, state.NewsFailed{Feed: feed, Err: err.Error()})
		return
	}

	s.st.Dispatch(ctx, state.SectionLoaded{Section: section, Articles: limit(articles, TopStoriesLimit)})
}

// FetchHome loads top stories, most popular and the given sections in parallel.
func (s *Service) FetchHome(ctx context.Context, sections []string) {
	ctx = withRequestID(ctx)

	var ewg errgroup.Group
	ewg.Go(func() error { s.FetchTopStories(ctx); return nil })
	ewg.Go(func() error { s.FetchPopularStories(ctx); return nil })
	if len(sections) > 0 {
		ewg.Go(func() error { s.FetchSectionStories(ctx, sections); return nil })
	}
	_ = ewg.Wait()
}
