package state

import "github.com/Semior001/newsly/app/store"

// Reduce applies the action to the state and returns the new state.
// The given state is not modified: containers are copied before reducers
// of slices touch them.
func Reduce(s State, a Action) State {
	s = s.clone()
	s.Auth = reduceAuth(s.Auth, a)
	s.Subscription = reduceSubscription(s.Subscription, a)
	s.News = reduceNews(s.News, a)
	s.Search = reduceSearch(s.Search, a)
	s.Books = reduceBooks(s.Books, a)
	s.Movies = reduceMovies(s.Movies, a)
	return s
}

func reduceAuth(s AuthState, a Action) AuthState {
	switch a := a.(type) {
	case LoginSucceeded:
		// user and token are set together or not at all
		if a.Token == "" || a.User.Username == "" {
			return s
		}
		u := a.User
		return AuthState{User: &u, Token: a.Token, IsAuthenticated: true}
	case Logout:
		return AuthState{}
	case ProfileUpdated:
		if !s.IsAuthenticated {
			return s
		}
		u := *s.User
		if a.Email != "" {
			u.Email = a.Email
		}
		if a.Picture != "" {
			u.Picture = a.Picture
		}
		s.User = &u
		return s
	}
	return s
}

func reduceSubscription(s SubscriptionState, a Action) SubscriptionState {
	if a, ok := a.(SetSubscribed); ok {
		return SubscriptionState{Subscribed: a.Subscribed}
	}
	return s
}

func reduceNews(s NewsState, a Action) NewsState {
	finish := func(f Feed, errMsg string) {
		delete(s.Loading, f)
		delete(s.Errors, f)
		if errMsg != "" {
			s.Errors[f] = errMsg
		}
	}

	switch a := a.(type) {
	case NewsRequested:
		s.Loading[a.Feed] = true
		delete(s.Errors, a.Feed)
	case TopStoriesLoaded:
		s.TopStories = nonNil(a.Articles)
		finish(FeedTopStories, "")
	case PopularLoaded:
		s.PopularStories = nonNil(a.Articles)
		finish(FeedPopular, "")
	case SectionsLoaded:
		s.SectionStories = map[string][]store.Article{}
		for section, articles := range a.Sections {
			s.SectionStories[section] = nonNil(articles)
		}
		finish(FeedSections, "")
	case SectionLoaded:
		s.SectionStories[a.Section] = nonNil(a.Articles)
		finish(SectionFeed(a.Section), "")
	case MixedLoaded:
		s.MixedStories = nonNil(a.Articles)
		finish(FeedMixed, "")
	case NewsFailed:
		finish(a.Feed, a.Err)
	}
	return s
}

func reduceSearch(s SearchState, a Action) SearchState {
	switch a := a.(type) {
	case SearchRequested:
		if a.Seq < s.Seq {
			return s
		}
		s.Seq = a.Seq
		s.Loading = true
		s.Error = ""
	case SearchSucceeded:
		if a.Seq != s.Seq {
			return s
		}
		s.Articles = nonNil(a.Articles)
		s.NoResult = len(a.Articles) == 0
		s.Page = a.Page
		s.TotalPages = a.TotalPages
		s.Loading = false
		s.Error = ""
	case SearchFailed:
		if a.Seq != s.Seq {
			return s
		}
		s.Articles = []store.Article{}
		s.NoResult = true
		s.Loading = false
		s.Error = a.Err
	case SearchReset:
		seq := s.Seq
		if a.Seq > seq {
			seq = a.Seq
		}
		return SearchState{Articles: []store.Article{}, Page: 1, TotalPages: 1, Seq: seq}
	case SearchPageChanged:
		s.Page = a.Page
	}
	return s
}

func reduceBooks(s BooksState, a Action) BooksState {
	switch a := a.(type) {
	case BooksRequested:
		s.Loading = true
		s.Error = ""
	case BooksSucceeded:
		return BooksState{Books: nonNil(a.Books), ListName: a.ListName}
	case BooksFailed:
		s.Books = []store.Book{}
		s.Loading = false
		s.Error = a.Err
	}
	return s
}

func reduceMovies(s MoviesState, a Action) MoviesState {
	switch a := a.(type) {
	case MoviesRequested:
		s.Loading = true
		s.Error = ""
	case MoviesSucceeded:
		return MoviesState{Reviews: nonNil(a.Reviews)}
	case MoviesFailed:
		return MoviesState{Reviews: []store.Review{}, Error: a.Err}
	}
	return s
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
