// Package report renders human-readable summaries of generated automata:
// location/transition/register counts, the accepting set, and (when the
// caller supplies one) the counting-table entry that produced the RA.
// Tables are laid out with rosed the way internal/game/debug.go lays out
// its "DEBUG FLAGS"/"DEBUG NPC" tables; integer counts are formatted with
// golang.org/x/text/message, and big counting-table entries get the same
// thousands grouping so a seventeen-digit Catalan-like count reads as
// "71,609,890,799,022,336" instead of a single numeral blob.
package report

import (
	"math/big"
	"strings"

	"github.com/dekarrin/rosed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dekarrin/rabench/internal/ra"
	"github.com/dekarrin/rabench/internal/wiki"
)

// printer formats the integer counts with thousands grouping. English grouping is used regardless of locale: the corpus
// values are opaque counts, not currency or date text, so there is no
// user-facing locale to honor.
var printer = message.NewPrinter(language.English)

// Summary holds the fields a report formats. Build one with Automaton or
// WikiRA before calling String.
type Summary struct {
	Title              string
	Locations          int
	AcceptingCount     int
	Transitions        int
	Registers          int
	CountingTableEntry *big.Int
}

// Automaton summarizes a runtime *ra.Automaton.
func Automaton(title string, a *ra.Automaton) Summary {
	return Summary{
		Title:          title,
		Locations:      len(a.Locations()),
		AcceptingCount: len(a.AcceptingLocations()),
		Transitions:    len(a.Transitions()),
		Registers:      len(a.Registers()),
	}
}

// WithCountingTableEntry attaches the C[t][p] entry that a sampler draw
// was taken from, so the report can show the sample space size alongside
// the structure it produced.
func (s Summary) WithCountingTableEntry(entry *big.Int) Summary {
	s.CountingTableEntry = entry
	return s
}

// WikiRA summarizes a *wiki.WikiRA (post-conversion, totalised form).
func WikiRA(title string, w *wiki.WikiRA) Summary {
	return Summary{
		Title:       title,
		Locations:   len(w.Locations),
		Transitions: len(w.Transitions),
		Registers:   len(w.Globals) + len(w.Constants),
	}
}

// String renders the summary as a two-column table, matching the
// TableHeaders/NoTrailingLineSeparators style of internal/game/debug.go's
// ListFlags/ListNPCs reports.
func (s Summary) String() string {
	data := [][]string{
		{"Field", "Value"},
		{"locations", printer.Sprintf("%d", s.Locations)},
	}
	if s.AcceptingCount > 0 || s.Transitions > 0 || s.Registers > 0 {
		data = append(data, []string{"accepting", printer.Sprintf("%d", s.AcceptingCount)})
	}
	data = append(data,
		[]string{"transitions", printer.Sprintf("%d", s.Transitions)},
		[]string{"registers", printer.Sprintf("%d", s.Registers)},
	)
	if e := s.CountingTableEntry; e != nil {
		digits := new(big.Int).Abs(e).String()
		var grouped strings.Builder
		if e.Sign() < 0 {
			grouped.WriteByte('-')
		}
		for i, r := range digits {
			if i > 0 && (len(digits)-i)%3 == 0 {
				grouped.WriteByte(',')
			}
			grouped.WriteRune(r)
		}
		data = append(data, []string{"sample space (C[t][p])", grouped.String()})
	}

	tableOpts := rosed.Options{
		TableHeaders:             true,
		NoTrailingLineSeparators: true,
	}

	return rosed.Edit(s.Title).
		InsertTableOpts(1, data, 80, tableOpts).
		String()
}
