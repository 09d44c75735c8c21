package reader

import (
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/Semior001/newsly/app/nyt"
	"github.com/Semior001/newsly/app/store"
	"github.com/go-shiori/go-readability"
	"github.com/samber/lo"
)

var spacesRe = regexp.MustCompile(`\s+`)

// Extractor extracts the readable part of an HTML page.
type Extractor struct {
	parser readability.Parser
}

// NewExtractor makes a new Extractor.
func NewExtractor(debug bool) Extractor {
	e := Extractor{parser: readability.NewParser()}
	e.parser.Debug = debug
	return e
}

// Extract extracts the article from an HTML page located at pageURL.
func (e Extractor) Extract(rd io.Reader, pageURL *url.URL) (Document, error) {
	doc, err := e.parser.Parse(rd, pageURL)
	if err != nil {
		return Document{}, fmt.Errorf("parse html: %w", err)
	}

	return Document{
		Article: store.Article{
			URL:      pageURL.String(),
			Title:    strings.TrimSpace(doc.Title),
			Abstract: sanitize(doc.Excerpt),
			Byline:   strings.TrimSpace(doc.Byline),
			ImageURL: lo.Ternary(doc.Image != "", doc.Image, nyt.FallbackImage),
			Source:   store.SourceReader,
		},
		SiteName: doc.SiteName,
		Content:  sanitize(doc.TextContent),
	}, nil
}

func sanitize(s string) string {
	// nbsp
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(spacesRe.ReplaceAllString(s, " "))
}
