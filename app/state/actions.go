package state

import "github.com/Semior001/newsly/app/store"

// Action is a closed set of messages the Store reduces.
// Only types declared in this package implement it.
type Action interface {
	// Type returns the name of the action for logs.
	Type() string
	action()
}

// Feed identifies one of the independently loaded news feeds.
type Feed string

// Feeds of the news slice.
const (
	FeedTopStories Feed = "top_stories"
	FeedPopular    Feed = "most_popular"
	FeedSections   Feed = "sections"
	FeedMixed      Feed = "mixed"
)

// SectionFeed returns the feed of a single section refresh.
func SectionFeed(section string) Feed { return Feed("section/" + section) }

// auth

// LoginSucceeded sets the user and the token at once.
type LoginSucceeded struct {
	User  store.User
	Token string
}

// Logout resets the auth slice.
type Logout struct{}

// ProfileUpdated merges non-empty fields into the current user.
type ProfileUpdated struct {
	Email   string
	Picture string
}

// news

// NewsRequested marks the feed as loading.
type NewsRequested struct{ Feed Feed }

// TopStoriesLoaded replaces top stories.
type TopStoriesLoaded struct{ Articles []store.Article }

// PopularLoaded replaces most popular stories.
type PopularLoaded struct{ Articles []store.Article }

// SectionsLoaded replaces the whole map of section stories.
type SectionsLoaded struct{ Sections map[string][]store.Article }

// SectionLoaded merges stories of one section into the map.
type SectionLoaded struct {
	Section  string
	Articles []store.Article
}

// MixedLoaded replaces the mixed feed of the idle search view.
type MixedLoaded struct{ Articles []store.Article }

// NewsFailed records the failure of the feed.
type NewsFailed struct {
	Feed Feed
	Err  string
}

// search

// SearchRequested marks the search with the given sequence number as in flight.
type SearchRequested struct{ Seq uint64 }

// SearchSucceeded carries a page of search results.
type SearchSucceeded struct {
	Seq        uint64
	Articles   []store.Article
	Page       int // 1-based
	TotalPages int
}

// SearchFailed carries the failure of the search.
type SearchFailed struct {
	Seq uint64
	Err string
}

// SearchReset clears results and invalidates searches issued before Seq.
type SearchReset struct{ Seq uint64 }

// SearchPageChanged records the page without fetching.
type SearchPageChanged struct{ Page int }

// books

// BooksRequested marks the books slice as loading.
type BooksRequested struct{ ListName string }

// BooksSucceeded replaces the books and the active list.
type BooksSucceeded struct {
	ListName string
	Books    []store.Book
}

// BooksFailed clears the books and records the error.
type BooksFailed struct{ Err string }

// movies

// MoviesRequested marks the movies slice as loading.
type MoviesRequested struct{}

// MoviesSucceeded replaces the reviews.
type MoviesSucceeded struct{ Reviews []store.Review }

// MoviesFailed clears the reviews and records the error.
type MoviesFailed struct{ Err string }

// subscription

// SetSubscribed sets the subscription flag.
type SetSubscribed struct{ Subscribed bool }

func (LoginSucceeded) Type() string    { return "auth/LOGIN_SUCCESS" }
func (Logout) Type() string            { return "auth/LOGOUT" }
func (ProfileUpdated) Type() string    { return "auth/UPDATE_PROFILE" }
func (NewsRequested) Type() string     { return "news/REQUEST" }
func (TopStoriesLoaded) Type() string  { return "news/SET_TOP_STORIES" }
func (PopularLoaded) Type() string     { return "news/SET_POPULAR_STORIES" }
func (SectionsLoaded) Type() string    { return "news/SET_SECTION_STORIES" }
func (SectionLoaded) Type() string     { return "news/SET_SINGLE_SECTION" }
func (MixedLoaded) Type() string       { return "news/SET_MIXED_STORIES" }
func (NewsFailed) Type() string        { return "news/FAILURE" }
func (SearchRequested) Type() string   { return "search/REQUEST" }
func (SearchSucceeded) Type() string   { return "search/SUCCESS" }
func (SearchFailed) Type() string      { return "search/FAILURE" }
func (SearchReset) Type() string       { return "search/RESET" }
func (SearchPageChanged) Type() string { return "search/SET_PAGE" }
func (BooksRequested) Type() string    { return "books/REQUEST" }
func (BooksSucceeded) Type() string    { return "books/SUCCESS" }
func (BooksFailed) Type() string       { return "books/FAILURE" }
func (MoviesRequested) Type() string   { return "movies/REQUEST" }
func (MoviesSucceeded) Type() string   { return "movies/SUCCESS" }
func (MoviesFailed) Type() string      { return "movies/FAILURE" }
func (SetSubscribed) Type() string     { return "subscription/SET" }

func (LoginSucceeded) action()    {}
func (Logout) action()            {}
func (ProfileUpdated) action()    {}
func (NewsRequested) action()     {}
func (TopStoriesLoaded) action()  {}
func (PopularLoaded) action()     {}
func (SectionsLoaded) action()    {}
func (SectionLoaded) action()     {}
func (MixedLoaded) action()       {}
func (NewsFailed) action()        {}
func (SearchRequested) action()   {}
func (SearchSucceeded) action()   {}
func (SearchFailed) action()      {}
func (SearchReset) action()       {}
func (SearchPageChanged) action() {}
func (BooksRequested) action()    {}
func (BooksSucceeded) action()    {}
func (BooksFailed) action()       {}
func (MoviesRequested) action()   {}
func (MoviesSucceeded) action()   {}
func (MoviesFailed) action()      {}
func (SetSubscribed) action()     {}
