package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/briandowns/spinner"

	"github.com/code-relay-cli/code-relay/internals/api"
	"github.com/code-relay-cli/code-relay/internals/catalog"
	"github.com/code-relay-cli/code-relay/internals/commands"
)

// fetchCatalog downloads the catalog with a spinner running and turns
// the usual failure modes into errors with actionable suggestions
func fetchCatalog(ctx context.Context) (*catalog.Catalog, error) {
	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond)
	s.Prefix = "  "
	s.Suffix = "  Fetching repos"
	s.Start()
	c, err := apiClient.FetchCatalog(ctx)
	s.Stop()

	switch {
	case err == nil:
		return c, nil
	case errors.Is(err, api.ErrorNotFound):
		return nil, &commands.CliError{
			Text: "the catalog could not be found",
			Suggestions: []string{
				`Check the "catalog" config value (coderelay config get catalog)`,
			},
		}
	case errors.Is(err, api.ErrorRateLimited):
		return nil, &commands.CliError{
			Text: "GitHub is rate limiting you",
			Help: "The unauthenticated GitHub API allows 60 requests per hour. Take a break.",
		}
	default:
		return nil, err
	}
}
