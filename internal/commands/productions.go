package commands

import (
	"fmt"

	"github.com/SoarGroup/soarcli/foundation/cli/options"
	mdwerror "github.com/SoarGroup/soarcli/foundation/core/error"
	"github.com/SoarGroup/soarcli/internal/kernel"
)

var exciseOptions = []options.Spec{
	{Short: 'a', Long: "all", Arity: options.NoArgument},
}

var printOptions = []options.Spec{
	{Short: 'f', Long: "full", Arity: options.NoArgument},
	{Short: 'c', Long: "count", Arity: options.NoArgument},
	{Short: 'c', Long: "total", Arity: options.NoArgument},
}

func (e *Env) spCommand() *command {
	return &command{
		name:  "sp",
		usage: "sp {name conditions --> actions}",
		run:   e.doSP,
	}
}

func (e *Env) doSP(words []string) error {
	s := options.NewScanner(words, nil)
	for s.Next() {
	}
	if err := s.Err(); err != nil {
		return err
	}
	if err := s.CheckArgCount(1, 1); err != nil {
		return err
	}

	_, replaced, err := e.Agent.AddProduction(s.Args()[0])
	if err != nil {
		return err
	}
	if replaced {
		fmt.Fprintln(e.Out, "#*")
	} else {
		fmt.Fprintln(e.Out, "*")
	}
	return nil
}

func (e *Env) exciseCommand() *command {
	return &command{
		name:  "excise",
		usage: "excise [-a] [production...]",
		run:   e.doExcise,
	}
}

func (e *Env) doExcise(words []string) error {
	s := options.NewScanner(words, exciseOptions)
	all := false
	for s.Next() {
		if s.Option() == 'a' {
			all = true
		}
	}
	if err := s.Err(); err != nil {
		return err
	}

	if all {
		if err := s.CheckArgCount(0, 0); err != nil {
			return err
		}
		n := e.Agent.ExciseAll()
		fmt.Fprintf(e.Out, "%d production(s) excised.\n", n)
		return nil
	}

	if err := s.CheckArgCount(1, -1); err != nil {
		return err
	}
	for _, name := range s.Args() {
		if err := e.Agent.Excise(name); err != nil {
			return err
		}
		fmt.Fprintf(e.Out, "Production %s excised.\n", name)
	}
	return nil
}

func (e *Env) printCommand() *command {
	return &command{
		name:  "print",
		usage: "print [-f] [-c] [production]",
		run:   e.doPrint,
	}
}

func (e *Env) doPrint(words []string) error {
	s := options.NewScanner(words, printOptions)
	full, count := false, false
	for s.Next() {
		switch s.Option() {
		case 'f':
			full = true
		case 'c':
			count = true
		}
	}
	if err := s.Err(); err != nil {
		return err
	}
	if err := s.CheckArgCount(0, 1); err != nil {
		return err
	}

	if count {
		fmt.Fprintf(e.Out, "%d\n", e.Agent.ProductionCount())
		return nil
	}

	if args := s.Args(); len(args) == 1 {
		p, ok := e.Agent.Production(args[0])
		if !ok {
			return mdwerror.Newf("no production named %s", args[0]).
				WithCode(mdwerror.CodeNotFound)
		}
		printProduction(e, p, true)
		return nil
	}

	for _, p := range e.Agent.Productions() {
		printProduction(e, p, full)
	}
	return nil
}

func printProduction(e *Env, p kernel.Production, full bool) {
	if full {
		fmt.Fprintf(e.Out, "sp {%s}\n", p.Body)
		return
	}
	fmt.Fprintln(e.Out, p.Name)
}
