package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/code-relay-cli/code-relay/internals/commands"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "info <project-name>",
		Short: "Shows the details of a single project",
		Args:  cobra.ExactArgs(1),
	}, &infoRunner{})

	rootCmd.AddCommand(cmd.Command)
}

type infoRunner struct{}

func (i *infoRunner) RunE(cmd *cobra.Command, args []string) error {
	repos, err := fetchCatalog(cmd.Context())
	if err != nil {
		return err
	}

	entry, ok := repos.Find(args[0])
	if !ok {
		return &commands.CliError{
			Text: fmt.Sprintf("could not find project %q", args[0]),
			Suggestions: []string{
				`Run "coderelay list" to see all projects`,
			},
		}
	}

	logger.Headline(entry.Name)
	logger.Info(entry.Desc)
	fmt.Println()
	fmt.Println("  git:        " + entry.Git)
	fmt.Println("  languages:  " + strings.Join(entry.Languages, ", "))
	fmt.Println("  frameworks: " + tagList(entry.Frameworks))
	fmt.Println()
	logger.Info("Task: " + entry.Task.Desc)
	logger.Info("  in " + entry.Task.File)

	if entry.Setup.Len() != 0 {
		fmt.Println()
		logger.Info("Setup steps:")
		for _, step := range entry.Setup.Steps() {
			fmt.Printf("  %s: %s\n", step.Name, step.Command)
		}
	}

	return nil
}
