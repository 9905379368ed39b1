package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/code-relay-cli/code-relay/cmd/config"
	"github.com/code-relay-cli/code-relay/internals/api"
	"github.com/code-relay-cli/code-relay/internals/cmdlog"
	"github.com/code-relay-cli/code-relay/internals/commands"
	"github.com/code-relay-cli/code-relay/internals/ownhttp"
)

// set by main (goreleaser)
var (
	Version string
	Commit  string
)

var logger *cmdlog.Logger = cmdlog.New()

var (
	// the api client gets its own transport stack right away, `main`
	// swapping http.DefaultClient later would come too late for it
	apiClient     = api.NewWithClient(ownhttp.New())
	disableColors bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "coderelay",
	Short: "Recommends GitHub repos that want help.",
	Long: "Find and start working on repos that ask for help,\n" +
		"a couple lines of code at a time",

	Example: `
  coderelay prefs
  coderelay list
  coderelay start code-relay`,
}

var completionCmd = &cobra.Command{
	Use:   "completion",
	Args:  cobra.MaximumNArgs(1),
	Short: "Output shell completion code for bash",
	Long: `To load completion run

. <(coderelay completion)

You can add that line to your ~/.bashrc or ~/.profile to
persist completion in your shell.
`,
	Run: func(cmd *cobra.Command, args []string) {
		rootCmd.GenBashCompletion(os.Stdout)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if Version == "" {
		Version = "dev"
	}
	rootCmd.Version = Version

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&disableColors, "no-color", "", false, "disable color output")

	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(config.SubCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if disableColors || os.Getenv("CI") != "" {
		color.Disable()
		commands.EmojiEnabled = false
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	viper.AddConfigPath(filepath.Join(configDir, "coderelay"))
	viper.SetConfigName("config")

	viper.SetDefault("catalog", api.DefaultCatalogURL)
	viper.SetDefault("projectsdir", "")
	viper.SetDefault("noninteractive", false)

	viper.SetEnvPrefix("coderelay")
	viper.AutomaticEnv() // read in environment variables that match

	// a missing config file is fine, everything has defaults
	viper.ReadInConfig()

	apiClient.CatalogURL = viper.GetString("catalog")
}
