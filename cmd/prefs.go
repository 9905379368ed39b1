package cmd

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/code-relay-cli/code-relay/internals/commands"
	"github.com/code-relay-cli/code-relay/internals/prefs"
	"github.com/code-relay-cli/code-relay/internals/utils"
)

func init() {
	runner := &prefsRunner{}
	cmd := commands.New(&cobra.Command{
		Use:     "prefs",
		Aliases: []string{"user-prefs"},
		Short:   "Configure what projects you want to see",
		Example: `
  coderelay prefs
  coderelay prefs --add-language Python --add-framework "Tailwind CSS"
  coderelay prefs --exclude-framework angular`,
	}, runner)

	cmd.Flags().StringArrayVar(&runner.addLanguages, "add-language", nil, "add a language you know (full names are fine)")
	cmd.Flags().StringArrayVar(&runner.addFrameworks, "add-framework", nil, "add a framework you know")
	cmd.Flags().StringArrayVar(&runner.excludeFrameworks, "exclude-framework", nil, "never show projects using this framework")

	rootCmd.AddCommand(cmd.Command)
}

type prefsRunner struct {
	addLanguages      []string
	addFrameworks     []string
	excludeFrameworks []string
}

func (p *prefsRunner) RunE(cmd *cobra.Command, args []string) error {
	path, err := prefs.Path()
	if err != nil {
		return err
	}

	userPrefs, existed, err := prefs.Load()
	if err != nil {
		return &commands.CliError{
			Text: "your preferences file is not valid JSON",
			Help: err.Error(),
			Suggestions: []string{
				"Fix or delete " + path,
			},
		}
	}
	if !existed {
		if err := userPrefs.Save(); err != nil {
			return err
		}
		logger.Info(" ✓ Created " + path)
	}

	changed := p.applyFlags(userPrefs)
	if changed {
		if err := userPrefs.Save(); err != nil {
			return err
		}
	}

	logger.Headline("Your preferences:")
	logger.Log("Languages/frameworks are represented in an ID-ish format based on the full name (eg Tailwind CSS > tailwindcss)")
	fmt.Println("Languages: " + tagList(userPrefs.Languages))
	fmt.Println("Frameworks: " + tagList(userPrefs.Frameworks))
	fmt.Println("Excluded frameworks: " + tagList(userPrefs.ExcludedFrameworks))
	fmt.Println()

	flagged := len(p.addLanguages)+len(p.addFrameworks)+len(p.excludeFrameworks) != 0
	if flagged || viper.GetBool("noninteractive") {
		return nil
	}

	change := utils.BoolPrompt(&promptui.Prompt{
		Label:     "Do you want to change your preferences",
		IsConfirm: true,
	})
	if change {
		return utils.OpenPath(path)
	}
	return nil
}

// applyFlags folds the --add-*/--exclude-* flags into the preferences
// and reports whether anything is new
func (p *prefsRunner) applyFlags(userPrefs *prefs.Preferences) bool {
	changed := false
	for _, name := range p.addLanguages {
		if userPrefs.AddLanguage(name) {
			logger.Info(" ✓ Added language " + prefs.NormalizeTag(name))
			changed = true
		}
	}
	for _, name := range p.addFrameworks {
		if userPrefs.AddFramework(name) {
			logger.Info(" ✓ Added framework " + prefs.NormalizeTag(name))
			changed = true
		}
	}
	for _, name := range p.excludeFrameworks {
		if userPrefs.ExcludeFramework(name) {
			logger.Info(" ✓ Excluded framework " + prefs.NormalizeTag(name))
			changed = true
		}
	}
	return changed
}

func tagList(tags []string) string {
	if len(tags) == 0 {
		return "(none)"
	}
	return strings.Join(tags, ", ")
}
