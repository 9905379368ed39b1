package cmd

import (
	"fmt"

	"github.com/jwalton/gchalk"
	"github.com/spf13/cobra"

	"github.com/code-relay-cli/code-relay/internals/commands"
	"github.com/code-relay-cli/code-relay/internals/prefs"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:     "list",
		Aliases: []string{"list-repos", "ls"},
		Short:   "List repos that you can help with",
	}, &listRunner{})

	rootCmd.AddCommand(cmd.Command)
}

type listRunner struct{}

func (l *listRunner) RunE(cmd *cobra.Command, args []string) error {
	userPrefs, existed, err := prefs.Load()
	if err != nil {
		return err
	}
	if !existed {
		return &commands.CliError{
			Text: "you have not configured your preferences yet",
			Suggestions: []string{
				`Run "coderelay prefs" first`,
			},
		}
	}

	repos, err := fetchCatalog(cmd.Context())
	if err != nil {
		return err
	}

	entries := repos.Entries()
	for i := range entries {
		entry := &entries[i]
		match := userPrefs.Match(entry)

		line := fmt.Sprintf("%s, %s %s", entry.Name, entry.Desc, match.Label())
		switch match {
		case prefs.MatchGood:
			fmt.Println(gchalk.Green(line))
		case prefs.MatchNewFramework:
			fmt.Println(gchalk.Yellow(line))
		default:
			fmt.Println(gchalk.Red(line))
		}
	}

	fmt.Println()
	fmt.Println(`Get started on one by running "coderelay start <project-name>".`)
	return nil
}
