package store

// Source tells which endpoint an article was built from.
type Source string

// Known article sources.
const (
	SourceTopStories    Source = "top_stories"
	SourceMostPopular   Source = "most_popular"
	SourceArticleSearch Source = "article_search"
	SourceReader        Source = "reader"
)

// Article is a normalized news article, whatever endpoint produced it.
// URL is the identity of an article.
type Article struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Abstract    string `json:"abstract"`
	Byline      string `json:"byline"`
	Section     string `json:"section"`
	PublishedAt string `json:"published_at"`
	ImageURL    string `json:"image_url"`
	Source      Source `json:"source"`
}

// Book is an entry of a best-seller list.
type Book struct {
	Rank        int    `json:"rank"`
	WeeksOnList int    `json:"weeks_on_list"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Publisher   string `json:"publisher"`
	ISBN13      string `json:"isbn13"`
	ImageURL    string `json:"image_url"`
	AmazonURL   string `json:"amazon_url"`
}

// Review is a movie review.
type Review struct {
	DisplayTitle    string `json:"display_title"`
	Headline        string `json:"headline"`
	Byline          string `json:"byline"`
	Summary         string `json:"summary"`
	MPAARating      string `json:"mpaa_rating"`
	CriticsPick     bool   `json:"critics_pick"`
	PublicationDate string `json:"publication_date"`
	URL             string `json:"url"`
	ImageURL        string `json:"image_url"`
}

// User is an authenticated reader.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Picture  string `json:"picture,omitempty"`
}
