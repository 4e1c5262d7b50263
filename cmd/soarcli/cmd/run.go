package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

var runExprs []string

var runCmd = &cobra.Command{
	Use:   "run [file...]",
	Short: "Source files and evaluate inline commands",
	Long: `Sources each file in order, then evaluates each -e command in order.
Stops at the first error and exits non-zero.

Examples:
  soarcli run agent.soar
  soarcli run -e "sp {r1 (state <s>) --> (<s> ^a b)}" -e "print -c"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScripts(cmd.OutOrStdout(), args, runExprs)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringArrayVarP(&runExprs, "eval", "e", nil, "command to evaluate after the files (repeatable)")
}

func runScripts(out io.Writer, files, exprs []string) error {
	a, err := newApp(cfgFile, false)
	if err != nil {
		return err
	}
	defer a.Close()

	session, err := a.newSession(out)
	if err != nil {
		return err
	}
	if err := sourceAll(session, files); err != nil {
		return err
	}
	for _, expr := range exprs {
		if err := session.Evaluate(expr); err != nil {
			return err
		}
	}
	return nil
}
