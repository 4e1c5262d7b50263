package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SoarGroup/soarcli/foundation/cli/alias"
)

var aliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "Show the alias catalog new sessions start with",
	Long: `Prints the effective alias catalog: the built-in defaults unless
[aliases] skip_defaults is set, the [aliases] file, then [aliases] lines.
The output can be used as an alias file's entries.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printAliases(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(aliasesCmd)
}

func printAliases(out io.Writer) error {
	a, err := newApp(cfgFile, false)
	if err != nil {
		return err
	}
	defer a.Close()

	table := alias.New(alias.WithLogger(a.logger))
	if err := table.Load(a.aliasLines); err != nil {
		return err
	}
	for _, line := range table.Lines() {
		fmt.Fprintln(out, line)
	}
	return nil
}
