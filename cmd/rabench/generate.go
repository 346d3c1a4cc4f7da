package main

import (
	"context"
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/dekarrin/rabench/internal/compose"
	"github.com/dekarrin/rabench/internal/config"
	"github.com/dekarrin/rabench/internal/convert"
	"github.com/dekarrin/rabench/internal/gadget"
	"github.com/dekarrin/rabench/internal/guard"
	"github.com/dekarrin/rabench/internal/ra"
	"github.com/dekarrin/rabench/internal/rlog"
	"github.com/dekarrin/rabench/internal/sampler"
	"github.com/dekarrin/rabench/internal/task"
	"github.com/dekarrin/rabench/internal/util"
	"github.com/dekarrin/rabench/internal/xmlio"
)

// runGenerate wires internal/config, internal/task, internal/sampler,
// internal/compose, internal/gadget, internal/convert, and internal/xmlio
// into one batch-generation subcommand, matching the generate-task
// contract spec sections 5 and 6 describe: for each (size, alphabet,
// seed) in the Cartesian product of the operator's ranges, sample a DFA,
// apply the subcommand's composition step, convert it to Wiki form, and
// atomically write it to <outputDir>/<size>/<alphabet>/<size>_<alphabet>_<seed>.xml.
func runGenerate(kind string, args []string) error {
	fs := pflag.NewFlagSet(kind, pflag.ContinueOnError)
	cfg := config.DefaultBatch()
	configPath := fs.String("config", "", "TOML batch config file; flags below overlay it field-by-field")
	applyFlags := config.RegisterFlags(fs, &cfg)

	if err := fs.Parse(args); err != nil {
		return err
	}

	fileCfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	cfg = fileCfg
	applyFlags()

	if err := cfg.Validate(); err != nil {
		return err
	}
	rlog.SetQuiet(cfg.Quiet)

	sizeRange, err := task.ParseRange(cfg.SizeRange)
	if err != nil {
		return err
	}
	alphaRange, err := task.ParseRange(cfg.AlphabetRange)
	if err != nil {
		return err
	}
	seedRange, err := task.ParseRange(cfg.SeedRange)
	if err != nil {
		return err
	}

	var gadgets map[string]*ra.Automaton
	if cfg.GadgetDir != "" {
		gadgets, err = gadget.LoadLibrary(cfg.GadgetDir)
		if err != nil {
			return err
		}
	}
	gadgetList := orderedGadgets(gadgets)
	if len(gadgetList) == 0 {
		return fmt.Errorf("%s requires at least one gadget fixture in --gadget-dir", kind)
	}

	combos := task.CartesianProduct(sizeRange.Values(), alphaRange.Values(), seedRange.Values())

	batchID := task.NewBatchID()
	rlog.Info("rabench", "starting %s batch %s: %d tasks", kind, batchID, len(combos))

	tasks := make([]task.Task, len(combos))
	for i, combo := range combos {
		size, alphaSize, seed := combo[0], combo[1], combo[2]
		tasks[i] = task.Task{
			ID:   fmt.Sprintf("%s/%d_%d_%d", batchID, size, alphaSize, seed),
			Seed: int64(seed),
			Run: func(ctx context.Context, rng *rand.Rand) (any, error) {
				return generateOne(kind, cfg, size, alphaSize, seed, gadgetList)
			},
		}
	}

	pool := task.NewPool(0)
	results := pool.Run(context.Background(), tasks)

	var failures int
	for _, r := range results {
		if r.Err != nil {
			failures++
			rlog.Error("rabench", "%s: %v", r.Task.ID, r.Err)
			continue
		}
		rlog.Info("rabench", "%s: wrote %v", r.Task.ID, r.Value)
	}
	if failures > 0 {
		return fmt.Errorf("%d/%d tasks failed", failures, len(tasks))
	}
	return nil
}

func orderedGadgets(gadgets map[string]*ra.Automaton) []*ra.Automaton {
	var out []*ra.Automaton
	for _, name := range util.OrderedKeys(gadgets) {
		out = append(out, gadgets[name])
	}
	return out
}

func generateOne(kind string, cfg config.Batch, size, alphaSize, seed int, gadgets []*ra.Automaton) (string, error) {
	rng := rand.New(rand.NewSource(int64(seed)))
	alphabet := letterAlphabet(alphaSize)

	sampleOpts := sampler.Options{
		NStates:      size,
		Alphabet:     alphabet,
		NParameters:  0,
		DefaultGuard: guard.TrueGuard{},
		PAccept:      cfg.PAccept,
		Seed:         int64(seed),
	}

	a, err := sampler.ChamparnaudParanthoenRA(sampleOpts)
	if err != nil {
		return "", err
	}

	var composed *ra.Automaton
	switch kind {
	case "dfa-ra-dfa":
		sampleOpts.Seed = int64(seed) + 1
		b, err := sampler.ChamparnaudParanthoenRA(sampleOpts)
		if err != nil {
			return "", err
		}
		withGadget, err := compose.Concat(a, gadgets[rng.Intn(len(gadgets))])
		if err != nil {
			return "", err
		}
		composed, err = compose.Concat(withGadget, b)
		if err != nil {
			return "", err
		}
	case "dfa-replace-with-ra":
		composed, err = compose.PartialReplacement(a, cfg.ReplaceShare, gadgets, rng)
		if err != nil {
			return "", err
		}
	case "dfa-single-discriminator":
		composed, err = compose.SplitSingle(a, gadgets[rng.Intn(len(gadgets))], rng)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unknown generate kind %q", kind)
	}

	w, err := convert.ToWiki(composed, cfg.MinInputSyms)
	if err != nil {
		return "", err
	}
	data, err := xmlio.Encode(w)
	if err != nil {
		return "", err
	}

	path := filepath.Join(cfg.OutputDir,
		fmt.Sprintf("%d", size),
		fmt.Sprintf("%d", alphaSize),
		fmt.Sprintf("%d_%d_%d.xml", size, alphaSize, seed))

	if err := task.WriteAtomic(path, data, cfg.Force); err != nil {
		return "", err
	}
	return path, nil
}

// letterAlphabet returns n distinct input-letter names: single lowercase
// letters "a".."z" while they last, then "a26", "a27", ... so arbitrarily
// large alphabets still get distinct, deterministic names.
func letterAlphabet(n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		if i < 26 {
			out[i] = string(rune('a' + i))
		} else {
			out[i] = fmt.Sprintf("a%d", i)
		}
	}
	return out
}
