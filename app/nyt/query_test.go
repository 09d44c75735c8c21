package nyt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFilterQuery(t *testing.T) {
	tests := []struct {
		name     string
		topic    string
		keywords []string
		want     string
	}{
		{name: "empty", want: ""},
		{name: "blank inputs", topic: "  ", keywords: []string{"", " "}, want: ""},
		{name: "topic only", topic: "World", want: `section.name:("World")`},
		{name: "keywords only", keywords: []string{"Sports", "Health"}, want: `(desk:("Sports") OR desk:("Health"))`},
		{
			name:     "topic and keyword",
			topic:    "World",
			keywords: []string{"Sports"},
			want:     `section.name:("World") AND (desk:("Sports"))`,
		},
		{name: "quotes are escaped", topic: `Arts "and" Crafts`, want: `section.name:("Arts \"and\" Crafts")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildFilterQuery(tt.topic, tt.keywords))
			// deterministic
			assert.Equal(t, BuildFilterQuery(tt.topic, tt.keywords), BuildFilterQuery(tt.topic, tt.keywords))
		})
	}
}

func TestSearchQuery_Values(t *testing.T) {
	v := SearchQuery{Query: " ", Page: 0}.values()
	assert.Equal(t, "page=0&q=+", v.Encode())

	v = SearchQuery{Query: "go", Page: 3, FilterQuery: "fq", BeginDate: "20240101", EndDate: "20240131"}.values()
	assert.Equal(t, "begin_date=20240101&end_date=20240131&fq=fq&page=3&q=go", v.Encode())
}
