package main

import (
	"fmt"
	"io"

	"github.com/dekarrin/rabench/internal/input"
	"github.com/dekarrin/rabench/internal/wiki/lang"
)

// runGuardRepl starts an interactive loop for testing the guard
// mini-language grammar (spec section 4.F): each line is parsed as a
// guard expression, then shown in its canonical full form, its
// RALib-safe DNF form (or the reason it cannot be put in one), and its
// form after inequality simplification. Grounded on cmd/tqi's REPL loop,
// simplified to a single-shot read-eval-print with no command verbs of
// its own.
func runGuardRepl(args []string) error {
	rl, err := input.NewInteractiveReader()
	if err != nil {
		return fmt.Errorf("starting guard-repl: %w", err)
	}
	defer rl.Close()
	rl.SetPrompt("guard> ")

	fmt.Println("rabench guard-repl: enter a guard expression (spec section 4.F grammar), Ctrl-D to quit")

	for {
		line, err := rl.ReadCommand()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("guard-repl: %w", err)
		}

		evalGuardLine(line)
	}
}

func evalGuardLine(line string) {
	g, err := lang.ParseGuard(line)
	if err != nil {
		fmt.Printf("  parse error: %v\n", err)
		return
	}

	fmt.Printf("  full form:   %s\n", lang.FormatFull(g))

	dnf := lang.ToDisjunctiveNormalFormWiki(g)
	if safe, err := lang.FormatRALibSafeWiki(dnf); err != nil {
		fmt.Printf("  RALib-safe:  <not representable: %v>\n", err)
	} else {
		fmt.Printf("  RALib-safe:  %s\n", safe)
	}

	simplified := lang.SimplifyInequalitiesWiki(g)
	fmt.Printf("  simplified:  %s\n", lang.FormatFull(simplified))
}
