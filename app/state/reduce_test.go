package state

import (
	"testing"

	"github.com/Semior001/newsly/app/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_Auth(t *testing.T) {
	s := Initial()

	t.Run("login without token is ignored", func(t *testing.T) {
		res := Reduce(s, LoginSucceeded{User: store.User{Username: "john"}})
		assert.Equal(t, AuthState{}, res.Auth)

		res = Reduce(s, LoginSucceeded{Token: "tkn"})
		assert.Equal(t, AuthState{}, res.Auth)
	})

	t.Run("login sets everything at once", func(t *testing.T) {
		res := Reduce(s, LoginSucceeded{User: store.User{ID: "1", Username: "john"}, Token: "tkn"})
		require.NotNil(t, res.Auth.User)
		assert.Equal(t, "john", res.Auth.User.Username)
		assert.Equal(t, "tkn", res.Auth.Token)
		assert.True(t, res.Auth.IsAuthenticated)

		// original is untouched
		assert.Nil(t, s.Auth.User)
	})

	t.Run("profile update merges non-empty fields", func(t *testing.T) {
		res := Reduce(s, LoginSucceeded{User: store.User{Username: "john", Email: "a@b.c"}, Token: "tkn"})
		upd := Reduce(res, ProfileUpdated{Picture: "pic.png"})

		assert.Equal(t, "a@b.c", upd.Auth.User.Email)
		assert.Equal(t, "pic.png", upd.Auth.User.Picture)
		assert.Empty(t, res.Auth.User.Picture, "previous state must not change")
	})

	t.Run("profile update when logged out", func(t *testing.T) {
		res := Reduce(s, ProfileUpdated{Email: "x@y.z"})
		assert.Equal(t, AuthState{}, res.Auth)
	})

	t.Run("logout", func(t *testing.T) {
		res := Reduce(s, LoginSucceeded{User: store.User{Username: "john"}, Token: "tkn"})
		res = Reduce(res, Logout{})
		assert.Equal(t, AuthState{}, res.Auth)
	})
}

func TestReduce_News(t *testing.T) {
	a1 := store.Article{URL: "1"}
	a2 := store.Article{URL: "2"}

	s := Initial()
	s = Reduce(s, NewsRequested{Feed: FeedTopStories})
	assert.True(t, s.News.Loading[FeedTopStories])

	s = Reduce(s, PopularLoaded{Articles: []store.Article{a2}})
	s = Reduce(s, TopStoriesLoaded{Articles: []store.Article{a1}})
	assert.Equal(t, []store.Article{a1}, s.News.TopStories)
	assert.Equal(t, []store.Article{a2}, s.News.PopularStories)
	assert.Empty(t, s.News.Loading)

	s = Reduce(s, SectionsLoaded{Sections: map[string][]store.Article{"world": {a1}, "technology": nil}})
	assert.Equal(t, map[string][]store.Article{"world": {a1}, "technology": {}}, s.News.SectionStories)

	prev := s
	s = Reduce(s, SectionLoaded{Section: "arts", Articles: []store.Article{a2}})
	assert.Equal(t, map[string][]store.Article{
		"world":      {a1},
		"technology": {},
		"arts":       {a2},
	}, s.News.SectionStories)
	assert.Len(t, prev.News.SectionStories, 2, "merge must not leak into the previous state")

	s = Reduce(s, NewsFailed{Feed: FeedPopular, Err: "boom"})
	assert.Equal(t, "boom", s.News.Errors[FeedPopular])
	assert.Equal(t, []store.Article{a2}, s.News.PopularStories, "failure keeps loaded data")
	assert.Equal(t, []store.Article{a1}, s.News.TopStories)

	s = Reduce(s, PopularLoaded{Articles: nil})
	assert.NotContains(t, s.News.Errors, FeedPopular)
	assert.Equal(t, []store.Article{}, s.News.PopularStories)

	s = Reduce(s, NewsRequested{Feed: FeedMixed})
	assert.True(t, s.News.Loading[FeedMixed])
	s = Reduce(s, MixedLoaded{Articles: []store.Article{a2, a1}})
	assert.Equal(t, []store.Article{a2, a1}, s.News.MixedStories)
	assert.NotContains(t, s.News.Loading, FeedMixed)
	assert.Equal(t, []store.Article{a1}, s.News.TopStories, "mixed feed is independent")
}

func TestReduce_Search(t *testing.T) {
	r1 := []store.Article{{URL: "r1"}}
	r2 := []store.Article{{URL: "r2"}}

	t.Run("stale responses are dropped", func(t *testing.T) {
		s := Initial()
		s = Reduce(s, SearchRequested{Seq: 1})
		s = Reduce(s, SearchRequested{Seq: 2})
		s = Reduce(s, SearchSucceeded{Seq: 2, Articles: r2, Page: 1, TotalPages: 3})
		s = Reduce(s, SearchSucceeded{Seq: 1, Articles: r1, Page: 1, TotalPages: 9})
		s = Reduce(s, SearchFailed{Seq: 1, Err: "late"})

		assert.Equal(t, r2, s.Search.Articles)
		assert.Equal(t, 3, s.Search.TotalPages)
		assert.False(t, s.Search.Loading)
		assert.Empty(t, s.Search.Error)
	})

	t.Run("loading only while in flight", func(t *testing.T) {
		s := Reduce(Initial(), SearchRequested{Seq: 1})
		assert.True(t, s.Search.Loading)

		s = Reduce(s, SearchSucceeded{Seq: 1, Articles: nil, Page: 1, TotalPages: 1})
		assert.False(t, s.Search.Loading)
		assert.True(t, s.Search.NoResult)
		assert.Equal(t, []store.Article{}, s.Search.Articles)
	})

	t.Run("failure clears articles", func(t *testing.T) {
		s := Reduce(Initial(), SearchRequested{Seq: 1})
		s = Reduce(s, SearchSucceeded{Seq: 1, Articles: r1, Page: 2, TotalPages: 5})
		s = Reduce(s, SearchRequested{Seq: 2})
		s = Reduce(s, SearchFailed{Seq: 2, Err: "bad status code: 500"})

		assert.Empty(t, s.Search.Articles)
		assert.True(t, s.Search.NoResult)
		assert.Equal(t, "bad status code: 500", s.Search.Error)
		assert.Equal(t, 2, s.Search.Page, "page changes only on success")
	})

	t.Run("reset invalidates in-flight requests", func(t *testing.T) {
		s := Reduce(Initial(), SearchRequested{Seq: 1})
		s = Reduce(s, SearchReset{Seq: 2})
		s = Reduce(s, SearchSucceeded{Seq: 1, Articles: r1, Page: 1, TotalPages: 1})

		assert.Equal(t, SearchState{Articles: []store.Article{}, Page: 1, TotalPages: 1, Seq: 2}, s.Search)
	})

	t.Run("page change records the page", func(t *testing.T) {
		s := Reduce(Initial(), SearchPageChanged{Page: 4})
		assert.Equal(t, 4, s.Search.Page)
		assert.False(t, s.Search.Loading)
	})
}

func TestReduce_Books(t *testing.T) {
	s := Initial()
	assert.Equal(t, DefaultListName, s.Books.ListName)

	s = Reduce(s, BooksRequested{ListName: "hardcover-fiction"})
	assert.True(t, s.Books.Loading)

	s = Reduce(s, BooksSucceeded{ListName: "hardcover-fiction", Books: []store.Book{{Title: "A"}}})
	assert.Equal(t, BooksState{Books: []store.Book{{Title: "A"}}, ListName: "hardcover-fiction"}, s.Books)

	s = Reduce(s, BooksRequested{ListName: "young-adult-hardcover"})
	s = Reduce(s, BooksFailed{Err: "boom"})
	assert.Equal(t, BooksState{Books: []store.Book{}, ListName: "hardcover-fiction", Error: "boom"}, s.Books)
}

func TestReduce_MoviesAndSubscription(t *testing.T) {
	s := Reduce(Initial(), MoviesRequested{})
	assert.True(t, s.Movies.Loading)

	s = Reduce(s, MoviesSucceeded{Reviews: []store.Review{{DisplayTitle: "M"}}})
	assert.Equal(t, MoviesState{Reviews: []store.Review{{DisplayTitle: "M"}}}, s.Movies)

	s = Reduce(s, MoviesFailed{Err: "boom"})
	assert.Equal(t, MoviesState{Reviews: []store.Review{}, Error: "boom"}, s.Movies)

	s = Reduce(s, SetSubscribed{Subscribed: true})
	assert.True(t, s.Subscription.Subscribed)
	assert.False(t, s.Auth.IsAuthenticated, "subscription is independent of auth")
}

func TestReduce_ZeroState(t *testing.T) {
	assert.NotPanics(t, func() {
		s := Reduce(State{}, SectionLoaded{Section: "world"})
		assert.Equal(t, map[string][]store.Article{"world": {}}, s.News.SectionStories)
	})
}
