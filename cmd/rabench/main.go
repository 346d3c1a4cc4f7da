/*
Rabench generates corpora of semi-randomly structured register automata
in the Automata-Wiki XML dialect, for use as benchmark fixtures by
register-automaton learning tools.

Usage:

	rabench <subcommand> [flags]

The subcommands are:

	dfa-ra-dfa
		Generates DFA-gadget-DFA structures: two independently sampled
		DFAs concatenated around a gadget drawn from --gadget-dir.

	dfa-replace-with-ra
		Generates a single sampled DFA with a share of its transitions
		replaced by gadgets drawn from --gadget-dir.

	dfa-single-discriminator
		Generates a single sampled DFA with one eligible location split
		by a discriminator gadget drawn from --gadget-dir.

	guard-repl
		Starts an interactive session for testing the guard mini-language
		grammar (spec section 4.F): enter a guard expression and see its
		full form, its RALib-safe form, and its inequality-simplified form.

Each generate subcommand accepts:

	--size-range RANGE
		Number of DFA locations to sample, as "a", "a..b", "a..<b", or
		with a trailing "step k" (e.g. "10..50 step 10").

	--alphabet-range RANGE
		Input alphabet sizes to sample over, same range syntax.

	--seed-range RANGE
		RNG seeds to iterate, same range syntax. One output file is
		written per (size, alphabet size, seed) combination.

	--output-dir DIR, --gadget-dir DIR, --force, --p-accept, --replace-share,
	--min-input-symbols, --quiet, --config FILE
		See internal/config.Batch; --config loads a TOML batch file whose
		values these flags overlay field-by-field.
*/
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/rabench/internal/version"
)

// Exit codes, per spec section 6: 0 on success, non-zero on unrecoverable
// argument or I/O error. Grounded on cmd/tqi/main.go's ExitSuccess/
// ExitGameError/ExitInitError constants.
const (
	ExitSuccess = iota
	ExitArgError
	ExitRunError
)

func main() {
	returnCode := ExitSuccess
	defer func() {
		if p := recover(); p != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", p))
		}
		os.Exit(returnCode)
	}()

	if len(os.Args) < 2 {
		printUsage()
		returnCode = ExitArgError
		return
	}

	sub := os.Args[1]
	args := os.Args[2:]

	var err error
	switch sub {
	case "-v", "--version":
		fmt.Println(version.Current)
		return
	case "-h", "--help":
		printUsage()
		return
	case "dfa-ra-dfa", "dfa-replace-with-ra", "dfa-single-discriminator":
		err = runGenerate(sub, args)
	case "guard-repl":
		err = runGuardRepl(args)
	default:
		fmt.Fprintf(os.Stderr, "rabench: unknown subcommand %q\n", sub)
		printUsage()
		returnCode = ExitArgError
		return
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "rabench: %s: %s\n", sub, err.Error())
		returnCode = ExitRunError
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: rabench <dfa-ra-dfa|dfa-replace-with-ra|dfa-single-discriminator|guard-repl> [flags]")
}
