package nyt

import (
	"context"
	_ "embed"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Semior001/newsly/app/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

var (
	//go:embed testdata/top_stories.json
	topStoriesJSON []byte
	//go:embed testdata/most_popular.json
	mostPopularJSON []byte
	//go:embed testdata/search.json
	searchJSON []byte
	//go:embed testdata/books.json
	booksJSON []byte
	//go:embed testdata/reviews.json
	reviewsJSON []byte
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	return NewClient(slog.Default(), Opts{BaseURL: ts.URL, APIKey: "key", MaxConcurrent: 2})
}

func TestClient_TopStories(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/topstories/v2/world.json", r.URL.Path)
		assert.Equal(t, "api-key=key", r.URL.RawQuery)
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write(topStoriesJSON)
	})

	articles, err := cl.TopStories(context.Background(), "world")
	require.NoError(t, err)
	require.Len(t, articles, 4)

	assert.Equal(t, store.Article{
		URL:         "https://www.nytimes.com/2024/01/01/world/one.html",
		Title:       "Story with wide image",
		Abstract:    "Abstract one.",
		Byline:      "By Jane Doe",
		Section:     "world",
		PublishedAt: "2024-01-01T05:00:00-05:00",
		ImageURL:    "https://static01.nyt.com/images/super.jpg",
		Source:      store.SourceTopStories,
	}, articles[0])

	assert.Equal(t, "https://www.nytimes.com/images/small.jpg", articles[1].ImageURL)
	assert.Equal(t, FallbackImage, articles[2].ImageURL)
	assert.Equal(t, FallbackImage, articles[3].ImageURL)
}

func TestClient_MostPopular(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mostpopular/v2/viewed/1.json", r.URL.Path)
		_, _ = w.Write(mostPopularJSON)
	})

	articles, err := cl.MostPopular(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, "https://static01.nyt.com/images/medium440.jpg", articles[0].ImageURL)
	assert.Equal(t, store.SourceMostPopular, articles[0].Source)
	assert.Equal(t, "By John Roe", articles[0].Byline)
	assert.Equal(t, FallbackImage, articles[1].ImageURL)
}

func TestClient_Search(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/v2/articlesearch.json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "key", q.Get("api-key"))
		assert.Equal(t, "mars", q.Get("q"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, `section.name:("Science")`, q.Get("fq"))
		assert.Equal(t, "20240101", q.Get("begin_date"))
		assert.False(t, q.Has("end_date"))
		_, _ = w.Write(searchJSON)
	})

	res, err := cl.Search(context.Background(), SearchQuery{
		Query:       "mars",
		Page:        2,
		FilterQuery: `section.name:("Science")`,
		BeginDate:   "20240101",
	})
	require.NoError(t, err)
	assert.Equal(t, 25, res.Hits)
	require.Len(t, res.Articles, 3)

	assert.Equal(t, store.Article{
		URL:         "https://www.nytimes.com/2024/01/03/science/found.html",
		Title:       "Found article",
		Abstract:    "Snippet of the found article.",
		Byline:      "By Ann Smith",
		Section:     "Science",
		PublishedAt: "2024-01-03",
		ImageURL:    "https://www.nytimes.com/images/2024/01/03/xlarge.jpg",
		Source:      store.SourceArticleSearch,
	}, res.Articles[0])

	assert.Equal(t, "Print headline", res.Articles[1].Title)
	assert.Equal(t, "Culture", res.Articles[1].Section)
	assert.Equal(t, "https://static01.nyt.com/images/default.jpg", res.Articles[1].ImageURL)
	assert.Empty(t, res.Articles[1].Byline)
	assert.Equal(t, FallbackImage, res.Articles[2].ImageURL)
}

func TestClient_Search_LegacyMeta(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":{"docs":[],"meta":{"hits":7}}}`))
	})

	res, err := cl.Search(context.Background(), SearchQuery{Query: " "})
	require.NoError(t, err)
	assert.Equal(t, 7, res.Hits)
	assert.Empty(t, res.Articles)
}

func TestClient_BestSellers(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/books/v3/lists/current/hardcover-fiction.json", r.URL.Path)
		_, _ = w.Write(booksJSON)
	})

	books, err := cl.BestSellers(context.Background(), "hardcover-fiction")
	require.NoError(t, err)
	require.Len(t, books, 2)

	assert.Equal(t, store.Book{
		Rank:        1,
		WeeksOnList: 4,
		Title:       "THE BOOK",
		Author:      "Some Author",
		Description: "A book.",
		Publisher:   "Publisher",
		ISBN13:      "9780000000001",
		ImageURL:    "https://storage.googleapis.com/book.jpg",
		AmazonURL:   "https://www.amazon.com/dp/0000000001",
	}, books[0])
	assert.Equal(t, FallbackImage, books[1].ImageURL)
}

func TestClient_BestSellers_NoResults(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	})

	books, err := cl.BestSellers(context.Background(), "young-adult-hardcover")
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestClient_MovieReviews(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movies/v2/reviews/search.json", r.URL.Path)
		_, _ = w.Write(reviewsJSON)
	})

	reviews, err := cl.MovieReviews(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	assert.Equal(t, store.Review{
		DisplayTitle:    "The Movie",
		Headline:        "Review: The Movie",
		Byline:          "Critic Name",
		Summary:         "Short summary.",
		MPAARating:      "PG-13",
		CriticsPick:     true,
		PublicationDate: "2024-01-05",
		URL:             "https://www.nytimes.com/2024/01/05/movies/the-movie.html",
		ImageURL:        "https://static01.nyt.com/images/movie.jpg",
	}, reviews[0])

	assert.False(t, reviews[1].CriticsPick)
	assert.Empty(t, reviews[1].URL)
	assert.Equal(t, FallbackMovieImage, reviews[1].ImageURL)
}

func TestClient_BadStatus(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"fault":{"faultstring":"Rate limit quota violation"}}`))
	})

	_, err := cl.TopStories(context.Background(), HomeSection)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadStatus))
	assert.Contains(t, err.Error(), "429")
}

func TestClient_MalformedBody(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [`))
	})

	_, err := cl.MovieReviews(context.Background())
	assert.Error(t, err)
}
