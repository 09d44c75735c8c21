package nyt

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// SearchQuery is a wire-level request to the article search endpoint.
type SearchQuery struct {
	Query       string // free text, must not be empty
	Page        int    // 0-based
	FilterQuery string // optional
	BeginDate   string // optional, YYYYMMDD
	EndDate     string // optional, YYYYMMDD
}

func (q SearchQuery) values() url.Values {
	v := url.Values{}
	v.Set("q", q.Query)
	v.Set("page", strconv.Itoa(q.Page))

	if q.FilterQuery != "" {
		v.Set("fq", q.FilterQuery)
	}
	if q.BeginDate != "" {
		v.Set("begin_date", q.BeginDate)
	}
	if q.EndDate != "" {
		v.Set("end_date", q.EndDate)
	}

	return v
}

var fqEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// BuildFilterQuery builds the "fq" expression of article search:
// a section clause for the topic AND an OR-combination of desk clauses
// for the keywords. Empty inputs drop their clause, and when both are
// empty the result is an empty string.
func BuildFilterQuery(topic string, keywords []string) string {
	var parts []string

	if topic = strings.TrimSpace(topic); topic != "" {
		parts = append(parts, fmt.Sprintf(`section.name:("%s")`, fqEscaper.Replace(topic)))
	}

	keywords = lo.Filter(keywords, func(k string, _ int) bool { return strings.TrimSpace(k) != "" })
	if len(keywords) > 0 {
		clauses := lo.Map(keywords, func(k string, _ int) string {
			return fmt.Sprintf(`desk:("%s")`, fqEscaper.Replace(strings.TrimSpace(k)))
		})
		parts = append(parts, "("+strings.Join(clauses, " OR ")+")")
	}

	return strings.Join(parts, " AND ")
}
