// Package config loads batch-sweep configuration for the rabench CLI
// subcommands from a TOML file, then overlays any pflag values the
// operator actually set on the command line. The layering - file values
// as defaults, flags overriding only when Changed - mirrors
// cmd/tqserver/main.go's own env-var-then-flag overlay for --listen/--db.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/dekarrin/rabench/internal/rberrors"
)

// Batch holds the parameters common to the dfa-ra-dfa,
// dfa-replace-with-ra, and dfa-single-discriminator subcommands. Range
// fields use internal/task's range syntax ("a", "a..b", "a..<b", optional
// "step k").
type Batch struct {
	SizeRange     string  `toml:"size_range"`
	AlphabetRange string  `toml:"alphabet_range"`
	SeedRange     string  `toml:"seed_range"`
	OutputDir     string  `toml:"output_dir"`
	GadgetDir     string  `toml:"gadget_dir"`
	Force         bool    `toml:"force"`
	PAccept       float64 `toml:"p_accept"`
	ReplaceShare  float64 `toml:"replace_share"`
	MinInputSyms  int     `toml:"min_input_symbols"`
	Quiet         bool    `toml:"quiet"`
}

// DefaultBatch returns the batch defaults used when a field is present in
// neither the TOML file nor on the command line.
func DefaultBatch() Batch {
	return Batch{
		SizeRange:     "10",
		AlphabetRange: "2",
		SeedRange:     "0..9",
		OutputDir:     ".",
		PAccept:       0.5,
		ReplaceShare:  0.25,
		MinInputSyms:  0,
	}
}

// Validate checks the share-valued fields fall within [0,1], per spec
// section 7's InvalidArgument kind ("share outside [0,1]").
func (b Batch) Validate() error {
	if b.PAccept < 0 || b.PAccept > 1 {
		return fmt.Errorf("p_accept %v outside [0,1]: %w", b.PAccept, rberrors.ErrInvalidArgument)
	}
	if b.ReplaceShare < 0 || b.ReplaceShare > 1 {
		return fmt.Errorf("replace_share %v outside [0,1]: %w", b.ReplaceShare, rberrors.ErrInvalidArgument)
	}
	return nil
}

// Load reads a TOML batch config file, starting from DefaultBatch for any
// field the file omits.
func Load(path string) (Batch, error) {
	cfg := DefaultBatch()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Batch{}, fmt.Errorf("loading batch config %q: %v: %w", path, err, rberrors.ErrInvalidArgument)
	}
	return cfg, nil
}

// RegisterFlags attaches the Batch fields to fs using the same names as
// their TOML keys, so `--size-range` overlays `size_range`. The returned
// function must be called after fs.Parse to apply only the flags the
// operator actually changed, leaving file/default values intact for the
// rest.
func RegisterFlags(fs *pflag.FlagSet, cfg *Batch) func() {
	sizeRange := fs.String("size-range", cfg.SizeRange, "RA/DFA size range (a, a..b, a..<b, optional step k)")
	alphabetRange := fs.String("alphabet-range", cfg.AlphabetRange, "input alphabet size range")
	seedRange := fs.String("seed-range", cfg.SeedRange, "RNG seed range")
	outputDir := fs.String("output-dir", cfg.OutputDir, "directory to write generated XML into")
	gadgetDir := fs.String("gadget-dir", cfg.GadgetDir, "directory of discriminator/replacement gadget fixtures")
	force := fs.Bool("force", cfg.Force, "overwrite existing output files")
	pAccept := fs.Float64("p-accept", cfg.PAccept, "per-location acceptance probability")
	replaceShare := fs.Float64("replace-share", cfg.ReplaceShare, "share of transitions replaced by gadgets")
	minInputSyms := fs.Int("min-input-symbols", cfg.MinInputSyms, "pad the Wiki input alphabet to at least this many symbols")
	quiet := fs.Bool("quiet", cfg.Quiet, "suppress informational log output")

	return func() {
		if fs.Lookup("size-range").Changed {
			cfg.SizeRange = *sizeRange
		}
		if fs.Lookup("alphabet-range").Changed {
			cfg.AlphabetRange = *alphabetRange
		}
		if fs.Lookup("seed-range").Changed {
			cfg.SeedRange = *seedRange
		}
		if fs.Lookup("output-dir").Changed {
			cfg.OutputDir = *outputDir
		}
		if fs.Lookup("gadget-dir").Changed {
			cfg.GadgetDir = *gadgetDir
		}
		if fs.Lookup("force").Changed {
			cfg.Force = *force
		}
		if fs.Lookup("p-accept").Changed {
			cfg.PAccept = *pAccept
		}
		if fs.Lookup("replace-share").Changed {
			cfg.ReplaceShare = *replaceShare
		}
		if fs.Lookup("min-input-symbols").Changed {
			cfg.MinInputSyms = *minInputSyms
		}
		if fs.Lookup("quiet").Changed {
			cfg.Quiet = *quiet
		}
	}
}
