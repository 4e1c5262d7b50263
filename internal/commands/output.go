package commands

import (
	"fmt"
	"strings"

	"github.com/SoarGroup/soarcli/foundation/cli/options"
)

var echoOptions = []options.Spec{
	{Short: 'n', Long: "no-newline", Arity: options.NoArgument},
}

func (e *Env) echoCommand() *command {
	return &command{
		name:  "echo",
		usage: "echo [-n] [words...]",
		run:   e.doEcho,
	}
}

func (e *Env) doEcho(words []string) error {
	s := options.NewScanner(words, echoOptions)
	newline := true
	for s.Next() {
		if s.Option() == 'n' {
			newline = false
		}
	}
	if err := s.Err(); err != nil {
		return err
	}

	fmt.Fprint(e.Out, strings.Join(s.Args(), " "))
	if newline {
		fmt.Fprintln(e.Out)
	}
	return nil
}

func (e *Env) helpCommand() *command {
	return &command{
		name:  "help",
		usage: "help [command]",
		run:   e.doHelp,
	}
}

func (e *Env) doHelp(words []string) error {
	s := options.NewScanner(words, nil)
	for s.Next() {
	}
	if err := s.Err(); err != nil {
		return err
	}
	if err := s.CheckArgCount(0, 1); err != nil {
		return err
	}

	if args := s.Args(); len(args) == 1 {
		h, err := e.registry.Lookup(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(e.Out, "Usage: %s\n", h.Usage())
		return nil
	}

	fmt.Fprintln(e.Out, "Commands:")
	for _, h := range e.registry.Handlers() {
		fmt.Fprintf(e.Out, "  %-10s %s\n", h.Name(), h.Usage())
	}
	if e.Aliases.Len() > 0 {
		fmt.Fprintf(e.Out, "Aliases: %s\n", strings.Join(e.Aliases.Names(), " "))
	}
	return nil
}
