package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Semior001/newsly/app/state"
	"github.com/Semior001/newsly/app/store"
	"github.com/samber/lo"
)

var funcs = template.FuncMap{
	"inc":   func(i int) int { return i + 1 },
	"upper": strings.ToUpper,
	"wrap":  wrap,
}

var tmpl = template.Must(template.New("").Funcs(funcs).Parse(`
{{- define "articles" -}}
{{- range $i, $a := . }}
{{ inc $i }}. {{ if $a.Saved }}[saved] {{ end }}{{ $a.Title }}
   {{ with $a.Byline }}{{ . }} | {{ end }}{{ $a.Section }}{{ with $a.PublishedAt }} | {{ . }}{{ end }}
   {{ $a.URL }}
{{- else }}
   no articles
{{- end }}
{{ end -}}

{{- define "feed" -}}
== {{ upper .Name }} ==
{{- with .Err }}
   failed to load: {{ . }}
{{ else }}{{ template "articles" .Articles }}{{ end -}}
{{ end -}}

{{- define "books" -}}
== {{ .Label }} ==
{{- with .Err }}
   failed to load: {{ . }}
{{ else }}
{{- range .Books }}
#{{ .Rank }} {{ .Title }} by {{ .Author }}{{ with .WeeksOnList }} ({{ . }} weeks on list){{ end }}
   {{ wrap .Description 76 "   " }}
   {{ .AmazonURL }}
{{- else }}
   no books
{{- end }}
{{ end -}}
{{ end -}}

{{- define "movies" -}}
{{- with .Error }}failed to load: {{ . }}
{{ else }}
{{- range .Reviews }}
{{ .DisplayTitle }}{{ with .MPAARating }} [{{ . }}]{{ end }}{{ if .CriticsPick }} * critics pick{{ end }}
   {{ .Headline }}{{ with .Byline }} | {{ . }}{{ end }}
   {{ wrap .Summary 76 "   " }}
   {{ .URL }}
{{- else }}
no reviews
{{- end }}
{{ end -}}
{{ end -}}

{{- define "search" -}}
{{- if .Error }}failed to search: {{ .Error }}
{{ else if .NoResult }}no results
{{ else }}{{ template "articles" .Rows }}
page {{ .Page }} of {{ .TotalPages }}
{{ end -}}
{{ end -}}

{{- define "document" -}}
{{ .Title }}
{{ with .Byline }}{{ . }}
{{ end }}{{ .URL }}

{{ wrap .Content 80 "" }}
{{ end -}}
`))

// articleRow is an article of a listing, Saved marks favorites.
type articleRow struct {
	store.Article
	Saved bool
}

func rows(articles []store.Article) []articleRow {
	return lo.Map(articles, func(a store.Article, _ int) articleRow { return articleRow{Article: a} })
}

type feedView struct {
	Name     string
	Err      string
	Articles []articleRow
}

type searchView struct {
	state.SearchState
	Rows []articleRow
}

type booksView struct {
	Label string
	Err   string
	Books any
}

func render(w io.Writer, name string, data any) error {
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

func renderSearch(w io.Writer, s state.SearchState, articles []articleRow) error {
	return render(w, "search", searchView{SearchState: s, Rows: articles})
}

func renderFeed(w io.Writer, name string, news state.NewsState, feed state.Feed, articles []articleRow) error {
	return render(w, "feed", feedView{Name: name, Err: news.Errors[feed], Articles: articles})
}

// wrap breaks the text into lines of at most width runes, prefixing
// every line but the first.
func wrap(s string, width int, prefix string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	sb := strings.Builder{}
	lineLen := 0
	for i, w := range words {
		switch {
		case i == 0:
		case lineLen+1+len([]rune(w)) > width:
			sb.WriteString("\n" + prefix)
			lineLen = 0
		default:
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(w)
		lineLen += len([]rune(w))
	}

	return sb.String()
}
