package commands

import (
	"fmt"

	"github.com/SoarGroup/soarcli/foundation/cli/options"
	"github.com/SoarGroup/soarcli/foundation/cli/tokenizer"
	mdwerror "github.com/SoarGroup/soarcli/foundation/core/error"
)

var aliasOptions = []options.Spec{
	{Short: 'r', Long: "remove", Arity: options.NoArgument},
}

func (e *Env) aliasCommand() *command {
	return &command{
		name:  "alias",
		usage: "alias [-r] [name [expansion...]]",
		run:   e.doAlias,
	}
}

// doAlias only looks for options in the first argument, so expansions may
// contain options of the aliased command
func (e *Env) doAlias(words []string) error {
	head := words[:min(2, len(words))]
	s := options.NewScanner(head, aliasOptions)

	remove := false
	for s.Next() {
		if s.Option() == 'r' {
			remove = true
		}
	}
	if err := s.Err(); err != nil {
		return err
	}
	args := append(s.Args(), words[len(head):]...)

	switch {
	case remove:
		if len(args) != 1 {
			return mdwerror.New("alias -r takes exactly one name").
				WithCode(mdwerror.CodeInvalidArgument)
		}
		if !e.Aliases.Remove(args[0]) {
			return mdwerror.Newf("no alias named %s", args[0]).
				WithCode(mdwerror.CodeNotFound)
		}
		return nil

	case len(args) == 0:
		for name, expansion := range e.Aliases.All() {
			fmt.Fprintf(e.Out, "%s = %s\n", name, tokenizer.Join(expansion))
		}
		return nil

	case len(args) == 1:
		expansion, ok := e.Aliases.Lookup(args[0])
		if !ok {
			return mdwerror.Newf("no alias named %s", args[0]).
				WithCode(mdwerror.CodeNotFound)
		}
		fmt.Fprintf(e.Out, "%s = %s\n", args[0], tokenizer.Join(expansion))
		return nil

	default:
		return e.Aliases.Set(args)
	}
}
