package state

import (
	"github.com/Semior001/newsly/app/store"
	"golang.org/x/exp/maps"
)

// DefaultListName is the best-seller list active on a cold start.
const DefaultListName = "hardcover-fiction"

// State is the whole state tree.
type State struct {
	Auth         AuthState
	Subscription SubscriptionState
	News         NewsState
	Search       SearchState
	Books        BooksState
	Movies       MoviesState
}

// AuthState keeps the logged in user.
// IsAuthenticated is true iff both User and Token are set.
type AuthState struct {
	User            *store.User `json:"user"`
	Token           string      `json:"token,omitempty"`
	IsAuthenticated bool        `json:"is_authenticated"`
}

// SubscriptionState keeps the newsletter subscription flag.
type SubscriptionState struct {
	Subscribed bool `json:"subscribed"`
}

// NewsState keeps the front page feeds.
// Each feed is replaced only by its own actions.
type NewsState struct {
	TopStories     []store.Article
	SectionStories map[string][]store.Article
	PopularStories []store.Article
	MixedStories   []store.Article // idle search view
	Loading        map[Feed]bool
	Errors         map[Feed]string
}

// SearchState keeps the current page of the article search.
type SearchState struct {
	Articles   []store.Article
	Loading    bool
	NoResult   bool
	Page       int // 1-based
	TotalPages int
	Error      string

	// seq of the latest issued request, responses of older ones are dropped
	Seq uint64
}

// BooksState keeps the active best-seller list.
type BooksState struct {
	Books    []store.Book
	ListName string
	Loading  bool
	Error    string
}

// MoviesState keeps movie reviews.
type MoviesState struct {
	Reviews []store.Review
	Loading bool
	Error   string
}

// Initial returns the state of a cold start.
func Initial() State {
	return State{
		News: NewsState{
			TopStories:     []store.Article{},
			SectionStories: map[string][]store.Article{},
			PopularStories: []store.Article{},
			MixedStories:   []store.Article{},
			Loading:        map[Feed]bool{},
			Errors:         map[Feed]string{},
		},
		Search: SearchState{Articles: []store.Article{}, Page: 1, TotalPages: 1},
		Books:  BooksState{Books: []store.Book{}, ListName: DefaultListName},
		Movies: MoviesState{Reviews: []store.Review{}},
	}
}

// clone copies the mutable containers of the state.
// Reducers never modify slices in place, so slices are shared.
func (s State) clone() State {
	if s.Auth.User != nil {
		u := *s.Auth.User
		s.Auth.User = &u
	}
	s.News.SectionStories = cloneMap(s.News.SectionStories)
	s.News.Loading = cloneMap(s.News.Loading)
	s.News.Errors = cloneMap(s.News.Errors)
	return s
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return map[K]V{}
	}
	return maps.Clone(m)
}

// persisted is the part of the state that survives restarts.
type persisted struct {
	Auth         AuthState         `json:"auth"`
	Subscription SubscriptionState `json:"subscription"`
}
