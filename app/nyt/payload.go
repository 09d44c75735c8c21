package nyt

import (
	"encoding/json"
	"strings"
)

// Raw response shapes. Any field may be absent in the response,
// normalization is the only place they are read.

type topStoriesResponse struct {
	Status  string     `json:"status"`
	Section string     `json:"section"`
	Results []topStory `json:"results"`
}

type topStory struct {
	Section       string        `json:"section"`
	Subsection    string        `json:"subsection"`
	Title         string        `json:"title"`
	Abstract      string        `json:"abstract"`
	URL           string        `json:"url"`
	Byline        string        `json:"byline"`
	PublishedDate string        `json:"published_date"`
	Multimedia    topStoryMedia `json:"multimedia"`
}

type mostPopularResponse struct {
	Status  string        `json:"status"`
	Results []popularItem `json:"results"`
}

type popularItem struct {
	URL           string           `json:"url"`
	Section       string           `json:"section"`
	Byline        string           `json:"byline"`
	Title         string           `json:"title"`
	Abstract      string           `json:"abstract"`
	PublishedDate string           `json:"published_date"`
	Media         mostPopularMedia `json:"media"`
}

type searchResponse struct {
	Status   string `json:"status"`
	Response struct {
		Docs     []searchDoc `json:"docs"`
		Metadata *struct {
			Hits int `json:"hits"`
		} `json:"metadata"`
		Meta *struct {
			Hits int `json:"hits"`
		} `json:"meta"`
	} `json:"response"`
}

// hits reads the total hits count, older responses carry it in "meta".
func (r searchResponse) hits() int {
	switch {
	case r.Response.Metadata != nil:
		return r.Response.Metadata.Hits
	case r.Response.Meta != nil:
		return r.Response.Meta.Hits
	default:
		return 0
	}
}

type searchDoc struct {
	WebURL        string `json:"web_url"`
	Abstract      string `json:"abstract"`
	Snippet       string `json:"snippet"`
	LeadParagraph string `json:"lead_paragraph"`
	Headline      struct {
		Main          string `json:"main"`
		PrintHeadline string `json:"print_headline"`
	} `json:"headline"`
	Byline struct {
		Original string `json:"original"`
	} `json:"byline"`
	PubDate     string         `json:"pub_date"`
	SectionName string         `json:"section_name"`
	NewsDesk    string         `json:"news_desk"`
	Multimedia  searchDocMedia `json:"multimedia"`
}

type booksResponse struct {
	Status  string `json:"status"`
	Results *struct {
		ListName string    `json:"list_name"`
		Books    []rawBook `json:"books"`
	} `json:"results"`
}

type rawBook struct {
	Rank             int    `json:"rank"`
	WeeksOnList      int    `json:"weeks_on_list"`
	Title            string `json:"title"`
	Author           string `json:"author"`
	Description      string `json:"description"`
	Publisher        string `json:"publisher"`
	PrimaryISBN13    string `json:"primary_isbn13"`
	BookImage        string `json:"book_image"`
	AmazonProductURL string `json:"amazon_product_url"`
}

type reviewsResponse struct {
	Status  string      `json:"status"`
	Results []rawReview `json:"results"`
}

type rawReview struct {
	DisplayTitle    string `json:"display_title"`
	MPAARating      string `json:"mpaa_rating"`
	CriticsPick     int    `json:"critics_pick"`
	Byline          string `json:"byline"`
	Headline        string `json:"headline"`
	SummaryShort    string `json:"summary_short"`
	PublicationDate string `json:"publication_date"`
	Link            *struct {
		URL string `json:"url"`
	} `json:"link"`
	Multimedia reviewMedia `json:"multimedia"`
}

// media is a source-specific set of images attached to an article.
type media interface {
	imageURL() string
}

// topStoryMedia is the "multimedia" array of top stories.
type topStoryMedia []struct {
	URL    string `json:"url"`
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// imageURL prefers the first image at least 600px wide.
func (m topStoryMedia) imageURL() string {
	if len(m) == 0 {
		return ""
	}

	for _, img := range m {
		if img.Width >= 600 && img.URL != "" {
			return absURL(img.URL)
		}
	}

	return absURL(m[0].URL)
}

// UnmarshalJSON drops the media that is not an array,
// top stories without images sometimes carry an empty string.
func (m *topStoryMedia) UnmarshalJSON(bts []byte) error {
	type plain topStoryMedia
	var p plain
	if err := json.Unmarshal(bts, &p); err != nil {
		*m = nil
		return nil
	}
	*m = topStoryMedia(p)
	return nil
}

// mostPopularMedia is the "media" array of most popular articles.
type mostPopularMedia []struct {
	Type          string `json:"type"`
	MediaMetadata []struct {
		URL    string `json:"url"`
		Format string `json:"format"`
		Width  int    `json:"width"`
	} `json:"media-metadata"`
}

// imageURL picks the last, the largest, rendition of the first media.
func (m mostPopularMedia) imageURL() string {
	if len(m) == 0 || len(m[0].MediaMetadata) == 0 {
		return ""
	}

	meta := m[0].MediaMetadata
	return meta[len(meta)-1].URL
}

// UnmarshalJSON drops the media that is not an array.
func (m *mostPopularMedia) UnmarshalJSON(bts []byte) error {
	type plain mostPopularMedia
	var p plain
	if err := json.Unmarshal(bts, &p); err != nil {
		*m = nil
		return nil
	}
	*m = mostPopularMedia(p)
	return nil
}

// reviewMedia is the "multimedia" object of movie reviews.
type reviewMedia struct {
	Src string `json:"src"`
	URL string `json:"url"`
}

// UnmarshalJSON drops the media that is not an object.
func (m *reviewMedia) UnmarshalJSON(bts []byte) error {
	type plain reviewMedia
	var p plain
	if err := json.Unmarshal(bts, &p); err != nil {
		*m = reviewMedia{}
		return nil
	}
	*m = reviewMedia(p)
	return nil
}

func (m reviewMedia) imageURL() string {
	if m.Src != "" {
		return m.Src
	}
	return m.URL
}

// searchDocMedia is the "multimedia" of article search documents.
// Legacy responses carry an array of renditions with relative urls,
// current ones an object with "default" and "thumbnail" renditions.
type searchDocMedia struct {
	images []searchImage
}

type searchImage struct {
	URL   string `json:"url"`
	Width int    `json:"width"`
}

// UnmarshalJSON tolerates both shapes and ignores anything else.
func (m *searchDocMedia) UnmarshalJSON(bts []byte) error {
	var list []searchImage
	if err := json.Unmarshal(bts, &list); err == nil {
		m.images = list
		return nil
	}

	var obj struct {
		Default   searchImage `json:"default"`
		Thumbnail searchImage `json:"thumbnail"`
	}
	if err := json.Unmarshal(bts, &obj); err == nil {
		m.images = []searchImage{obj.Default, obj.Thumbnail}
	}

	return nil
}

// imageURL prefers the first rendition at least 600px wide.
func (m searchDocMedia) imageURL() string {
	first := ""
	for _, img := range m.images {
		if img.URL == "" {
			continue
		}
		if img.Width >= 600 {
			return absURL(img.URL)
		}
		if first == "" {
			first = img.URL
		}
	}
	return absURL(first)
}

const siteURL = "https://www.nytimes.com/"

func absURL(u string) string {
	if u == "" || strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return siteURL + strings.TrimPrefix(u, "/")
}
