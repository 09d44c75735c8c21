package cmd

import (
	"context"

	"github.com/Semior001/newsly/app/state"
)

// Home is a command to print the home page: top stories, most popular
// and stories of the configured sections.
type Home struct {
	CommonOpts
	Sections []string `long:"section" description:"sections to load, overrides the configured ones"`
}

// Execute runs the command.
func (h *Home) Execute(_ []string) error {
	return h.run(func(ctx context.Context, a *app) error {
		sections := h.Sections
		if len(sections) == 0 {
			sections = a.cfg.HomeSections
		}

		a.svc.FetchHome(ctx, sections)

		news := a.st.State().News
		if err := renderFeed(h.out(), "top stories", news, state.FeedTopStories, a.markSaved(ctx, news.TopStories)); err != nil {
			return err
		}

		if err := renderFeed(h.out(), "most popular", news, state.FeedPopular, a.markSaved(ctx, news.PopularStories)); err != nil {
			return err
		}

		for _, s := range sections {
			if err := renderFeed(h.out(), s, news, state.FeedSections, a.markSaved(ctx, news.SectionStories[s])); err != nil {
				return err
			}
		}

		return nil
	})
}

// Top is a command to print top stories of the front page.
type Top struct {
	CommonOpts
}

// Execute runs the command.
func (t *Top) Execute(_ []string) error {
	return t.run(func(ctx context.Context, a *app) error {
		a.svc.FetchTopStories(ctx)
		news := a.st.State().News
		return renderFeed(t.out(), "top stories", news, state.FeedTopStories, a.markSaved(ctx, news.TopStories))
	})
}

// Popular is a command to print the most viewed stories.
type Popular struct {
	CommonOpts
}

// Execute runs the command.
func (p *Popular) Execute(_ []string) error {
	return p.run(func(ctx context.Context, a *app) error {
		a.svc.FetchPopularStories(ctx)
		news := a.st.State().News
		return renderFeed(p.out(), "most popular", news, state.FeedPopular, a.markSaved(ctx, news.PopularStories))
	})
}

// Section is a command to print stories of a single section.
type Section struct {
	CommonOpts
	Args struct {
		Name string `positional-arg-name:"section" required:"true" description:"section name, e.g. world"`
	} `positional-args:"yes"`
}

// Execute runs the command.
func (s *Section) Execute(_ []string) error {
	return s.run(func(ctx context.Context, a *app) error {
		a.svc.FetchSingleSection(ctx, s.Args.Name)
		news := a.st.State().News
		return renderFeed(s.out(), s.Args.Name, news, state.SectionFeed(s.Args.Name),
			a.markSaved(ctx, news.SectionStories[s.Args.Name]))
	})
}
