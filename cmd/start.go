package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	"github.com/jwalton/gchalk"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/code-relay-cli/code-relay/internals/commands"
	"github.com/code-relay-cli/code-relay/internals/project"
	"github.com/code-relay-cli/code-relay/internals/utils"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:     "start <project-name>",
		Aliases: []string{"start-project"},
		Short:   "Clone a project to start working on",
		Long: "Clone a project to start working on.\n" +
			"Without a name you get to pick one from the catalog.",
		Args: cobra.MaximumNArgs(1),
	}, &startRunner{})

	rootCmd.AddCommand(cmd.Command)
}

type startRunner struct{}

func (s *startRunner) RunE(cmd *cobra.Command, args []string) error {
	if !utils.GitAvailable() {
		return &commands.CliError{
			Text: "git is required to download projects",
			Suggestions: []string{
				"Install git first (https://git-scm.com)",
			},
		}
	}

	repos, err := fetchCatalog(cmd.Context())
	if err != nil {
		return err
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		if viper.GetBool("noninteractive") {
			return fmt.Errorf("a project name is required in non interactive mode")
		}
		entries := repos.Entries()
		names := make([]string, len(entries))
		for i := range entries {
			names[i] = entries[i].Name
		}
		name = utils.SelectPrompt(&promptui.Select{
			Label: "Pick a project",
			Items: names,
			Size:  10,
		})
	}

	entry, ok := repos.Find(name)
	if !ok {
		return &commands.CliError{
			Text: fmt.Sprintf("could not find project %q", name),
			Suggestions: []string{
				`Run "coderelay list" to see all projects`,
			},
		}
	}

	baseDir := viper.GetString("projectsdir")
	if baseDir == "" {
		if baseDir, err = project.DefaultBaseDir(); err != nil {
			return err
		}
	}
	checkout := project.NewCheckout(baseDir, entry)

	if checkout.Exists() {
		if viper.GetBool("noninteractive") {
			return fmt.Errorf("project at %s already exists", checkout.Dir)
		}
		del := utils.BoolPrompt(&promptui.Prompt{
			Label:     fmt.Sprintf("Project at %s already exists. Delete it", checkout.Dir),
			IsConfirm: true,
		})
		if !del {
			logger.Info("Aborting")
			return nil
		}
		if err := checkout.Remove(); err != nil {
			return err
		}
	}

	task := logger.NewTask(2)

	task.Step("🚚", "Downloading the code")
	spin := spinner.New(spinner.CharSets[9], 100*time.Millisecond)
	spin.Prefix = "  "
	spin.Suffix = "  Cloning " + entry.Git
	spin.Start()
	err = checkout.Clone(cmd.Context())
	spin.Stop()
	if err != nil {
		return err
	}

	task.Step("📝", "Writing project metadata")
	if err := checkout.WriteMetadata(); err != nil {
		return err
	}

	downloaded := "Project " + name
	if size, err := checkout.Size(); err == nil {
		downloaded += " (" + humanize.Bytes(size) + ")"
	}
	if head, err := checkout.Head(); err == nil {
		downloaded += " at " + head
	}
	logger.Info(fmt.Sprintf("%s downloaded to %s.", downloaded, checkout.Dir))

	fmt.Println()
	logger.Headline("Your task: " + entry.Task.Desc)
	logger.Info("Start in " + gchalk.Bold(entry.Task.File))

	if entry.Setup.Len() != 0 {
		fmt.Println()
		logger.Headline("Setup steps (run them in this order):")
		for _, step := range entry.Setup.Steps() {
			fmt.Printf("  %s: %s\n", step.Name, gchalk.Bold(step.Command))
		}
	}

	if viper.GetBool("noninteractive") {
		return nil
	}

	open := utils.BoolPrompt(&promptui.Prompt{
		Label:     "Do you want to open the project now",
		IsConfirm: true,
	})
	if open {
		return utils.OpenPath(checkout.Dir)
	}
	return nil
}
