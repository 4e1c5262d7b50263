package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "soarcli",
	Short: "soarcli - Soar command interpreter",
	Long: `soarcli evaluates Soar command language: scripts, an interactive
console and a remote WebSocket console.

Commands:
  run      - Source files and evaluate inline commands
  console  - Interactive console (TUI or line mode)
  serve    - Remote WebSocket console
  aliases  - Show the alias catalog new sessions start with`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $SOARCLI_CONFIG or ./configs/soarcli.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
