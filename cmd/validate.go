package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/code-relay-cli/code-relay/internals/catalog"
	"github.com/code-relay-cli/code-relay/internals/commands"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "validate <file>",
		Short: "Checks a local catalog file against the schema",
		Long: "Checks a local catalog file against the schema.\n" +
			"Useful before opening a pull request against the catalog repository.",
		Args: cobra.ExactArgs(1),
	}, &validateRunner{})

	rootCmd.AddCommand(cmd.Command)
}

type validateRunner struct{}

func (v *validateRunner) RunE(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	c, err := catalog.Load(data)
	if err != nil {
		return asCatalogCliError(args[0], err)
	}

	logger.Info(fmt.Sprintf(" ✓ %s is a valid catalog (%d entries)", args[0], c.Len()))
	return nil
}

// asCatalogCliError attaches fix-it hints to the loader's failures.
// The loader already reports entry position and field, this only adds
// the human angle
func asCatalogCliError(file string, err error) error {
	cliErr := &commands.CliError{
		Text: fmt.Sprintf("%s is not a valid catalog", file),
		Help: err.Error(),
	}

	var parseErr *catalog.ParseError
	var schemaErr *catalog.SchemaError
	var emptyErr *catalog.EmptyValueError
	var dupErr *catalog.DuplicateNameError

	switch {
	case errors.As(err, &parseErr):
		cliErr.Suggestions = []string{"The file has to be a JSON array of entries"}
	case errors.As(err, &schemaErr):
		cliErr.Suggestions = []string{
			fmt.Sprintf("Look at entry %d (counting from 0)", schemaErr.Index),
		}
	case errors.As(err, &emptyErr):
		cliErr.Suggestions = []string{
			fmt.Sprintf("Fill in %q on entry %d or remove the entry", emptyErr.Field, emptyErr.Index),
		}
	case errors.As(err, &dupErr):
		cliErr.Suggestions = []string{
			fmt.Sprintf("Rename or remove one of the %q entries", dupErr.Name),
		}
	}

	return cliErr
}
