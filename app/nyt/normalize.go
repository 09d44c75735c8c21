package nyt

import (
	"github.com/Semior001/newsly/app/store"
	"github.com/samber/lo"
)

// Placeholders used when a response carries no image.
const (
	FallbackImage      = "https://via.placeholder.com/800x450.png?text=No+Image"
	FallbackMovieImage = "https://placehold.co/600x400?text=No+Image"
)

func imageOr(m media, fallback string) string {
	if u := m.imageURL(); u != "" {
		return u
	}
	return fallback
}

func firstNonEmpty(vals ...string) string {
	v, _ := lo.Coalesce(vals...)
	return v
}

func normalizeTopStory(s topStory) store.Article {
	return store.Article{
		URL:         s.URL,
		Title:       s.Title,
		Abstract:    s.Abstract,
		Byline:      s.Byline,
		Section:     s.Section,
		PublishedAt: s.PublishedDate,
		ImageURL:    imageOr(s.Multimedia, FallbackImage),
		Source:      store.SourceTopStories,
	}
}

func normalizePopular(p popularItem) store.Article {
	return store.Article{
		URL:         p.URL,
		Title:       p.Title,
		Abstract:    p.Abstract,
		Byline:      p.Byline,
		Section:     p.Section,
		PublishedAt: p.PublishedDate,
		ImageURL:    imageOr(p.Media, FallbackImage),
		Source:      store.SourceMostPopular,
	}
}

// normalizeSearchDoc takes the headline, falling back to the print one,
// and the abstract, falling back to the snippet and the lead paragraph.
func normalizeSearchDoc(d searchDoc) store.Article {
	published := d.PubDate
	if len(published) > 10 {
		published = published[:10]
	}

	return store.Article{
		URL:         d.WebURL,
		Title:       firstNonEmpty(d.Headline.Main, d.Headline.PrintHeadline),
		Abstract:    firstNonEmpty(d.Abstract, d.Snippet, d.LeadParagraph),
		Byline:      d.Byline.Original,
		Section:     firstNonEmpty(d.SectionName, d.NewsDesk),
		PublishedAt: published,
		ImageURL:    imageOr(d.Multimedia, FallbackImage),
		Source:      store.SourceArticleSearch,
	}
}

func normalizeBook(b rawBook) store.Book {
	return store.Book{
		Rank:        b.Rank,
		WeeksOnList: b.WeeksOnList,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Publisher:   b.Publisher,
		ISBN13:      b.PrimaryISBN13,
		ImageURL:    firstNonEmpty(b.BookImage, FallbackImage),
		AmazonURL:   b.AmazonProductURL,
	}
}

func normalizeReview(r rawReview) store.Review {
	res := store.Review{
		DisplayTitle:    r.DisplayTitle,
		Headline:        r.Headline,
		Byline:          r.Byline,
		Summary:         r.SummaryShort,
		MPAARating:      r.MPAARating,
		CriticsPick:     r.CriticsPick == 1,
		PublicationDate: r.PublicationDate,
		ImageURL:        imageOr(r.Multimedia, FallbackMovieImage),
	}

	if r.Link != nil {
		res.URL = r.Link.URL
	}

	return res
}
