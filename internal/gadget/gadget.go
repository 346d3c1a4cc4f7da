// Package gadget loads named register automata from a directory of
// Wiki-dialect XML fixtures, for use as discriminator or replacement
// arguments to the composition operators in internal/compose. The
// single-file-then-wrap error convention mirrors game/persistence.go's
// LoadManifestFile; the directory scan itself has no direct precedent in
// the teacher repo and is written directly against os.ReadDir - see
// DESIGN.md.
package gadget

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dekarrin/rabench/internal/convert"
	"github.com/dekarrin/rabench/internal/ra"
	"github.com/dekarrin/rabench/internal/rberrors"
	"github.com/dekarrin/rabench/internal/xmlio"
)

// LoadLibrary reads every *.xml file directly inside dir, decodes it as
// Automata-Wiki XML, and converts it to the internal runtime model. The
// result is keyed by file stem (base name with the .xml extension
// stripped), so a fixture at dir/two_loc.xml becomes gadgets["two_loc"].
//
// A directory containing no .xml files is not an error; the returned map
// is simply empty.
func LoadLibrary(dir string) (map[string]*ra.Automaton, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading gadget library %q: %v: %w", dir, err, rberrors.ErrIOFailure)
	}

	gadgets := make(map[string]*ra.Automaton)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.ToLower(filepath.Ext(name)) != ".xml" {
			continue
		}
		stem := strings.TrimSuffix(name, filepath.Ext(name))

		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading gadget %q: %v: %w", path, err, rberrors.ErrIOFailure)
		}

		w, err := xmlio.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("decoding gadget %q: %w", path, err)
		}

		a, err := convert.FromWiki(*w)
		if err != nil {
			return nil, fmt.Errorf("converting gadget %q: %w", path, err)
		}

		if _, exists := gadgets[stem]; exists {
			return nil, fmt.Errorf("gadget library %q: duplicate gadget name %q: %w", dir, stem, rberrors.ErrInconsistentDeclaration)
		}
		gadgets[stem] = a
	}

	return gadgets, nil
}
