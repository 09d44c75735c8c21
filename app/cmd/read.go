package cmd

import (
	"context"
	"fmt"
)

// Read is a command to print the readable text of an article.
type Read struct {
	CommonOpts
	Args struct {
		URL string `positional-arg-name:"url" required:"true" description:"article url"`
	} `positional-args:"yes"`
}

// Execute runs the command.
func (r *Read) Execute(_ []string) error {
	return r.run(func(ctx context.Context, a *app) error {
		doc, err := a.reader.GetArticle(ctx, r.Args.URL)
		if err != nil {
			return fmt.Errorf("read article: %w", err)
		}
		return render(r.out(), "document", doc)
	})
}
