// Package xmlio encodes and decodes wiki.WikiRA to and from the
// Automata-Wiki register-automaton XML dialect (spec section 6). No
// third-party XML library appears anywhere in the retrieved corpus, so
// this adapter is built directly on the standard library's encoding/xml -
// see DESIGN.md.
package xmlio

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/dekarrin/rabench/internal/wiki"
	"github.com/dekarrin/rabench/internal/wiki/lang"
)

type xmlRA struct {
	XMLName     xml.Name        `xml:"register-automaton"`
	Alphabet    xmlAlphabet     `xml:"alphabet"`
	Constants   []xmlRegister   `xml:"constants>constant"`
	Globals     []xmlRegister   `xml:"globals>variable"`
	Locations   []xmlLocation   `xml:"locations>location"`
	Transitions []xmlTransition `xml:"transitions>transition"`
}

type xmlAlphabet struct {
	Inputs  []xmlSymbol `xml:"inputs>symbol"`
	Outputs []xmlSymbol `xml:"outputs>symbol"`
}

type xmlSymbol struct {
	Name   string     `xml:"name,attr"`
	Params []xmlParam `xml:"param"`
}

type xmlParam struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
}

type xmlRegister struct {
	Name  string `xml:"name,attr"`
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

type xmlLocation struct {
	Initial bool   `xml:"initial,attr,omitempty"`
	Name    string `xml:"name,attr"`
}

type xmlTransition struct {
	From        string      `xml:"from,attr"`
	To          string      `xml:"to,attr"`
	Symbol      string      `xml:"symbol,attr"`
	Params      string      `xml:"params,attr,omitempty"`
	Guard       string      `xml:"guard,omitempty"`
	Assignments []xmlAssign `xml:"assignments>assign"`
}

type xmlAssign struct {
	To     string `xml:"to,attr"`
	Source string `xml:",chardata"`
}

// Encode renders w as Automata-Wiki XML using the RALib-safe guard dialect
// (spec 6: "the emitter MUST use the RALib-safe guard dialect"), indented
// two spaces per level.
func Encode(w *wiki.WikiRA) ([]byte, error) {
	x := xmlRA{
		Alphabet: xmlAlphabet{
			Inputs:  toXMLSymbols(w.Alphabet.Inputs),
			Outputs: toXMLSymbols(w.Alphabet.Outputs),
		},
		Constants: toXMLRegisters(w.Constants),
		Globals:   toXMLRegisters(w.Globals),
	}
	for _, l := range w.Locations {
		x.Locations = append(x.Locations, xmlLocation{Initial: l.Initial, Name: l.Name})
	}
	for _, t := range w.Transitions {
		xt := xmlTransition{
			From:   t.From,
			To:     t.To,
			Symbol: t.Symbol,
			Params: strings.Join(t.Params, ","),
		}
		guardText, err := lang.FormatGuardForWire(t.Guard)
		if err != nil {
			return nil, fmt.Errorf("xmlio encode: transition %s->%s: %w", t.From, t.To, err)
		}
		xt.Guard = guardText
		for _, a := range t.Assignments {
			xt.Assignments = append(xt.Assignments, xmlAssign{To: a.To, Source: a.From.String()})
		}
		x.Transitions = append(x.Transitions, xt)
	}

	body, err := xml.MarshalIndent(x, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("xmlio encode: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// Decode parses Automata-Wiki XML into a wiki.WikiRA. The parser accepts
// the full guard dialect (spec 6: "the parser MUST accept the full
// dialect"), via lang.ParseGuard.
func Decode(data []byte) (*wiki.WikiRA, error) {
	var x xmlRA
	if err := xml.Unmarshal(data, &x); err != nil {
		return nil, fmt.Errorf("xmlio decode: %w", err)
	}

	w := &wiki.WikiRA{
		Alphabet: wiki.Alphabet{
			Inputs:  fromXMLSymbols(x.Alphabet.Inputs),
			Outputs: fromXMLSymbols(x.Alphabet.Outputs),
		},
		Constants: fromXMLRegisters(x.Constants),
		Globals:   fromXMLRegisters(x.Globals),
	}
	for _, l := range x.Locations {
		w.Locations = append(w.Locations, wiki.WikiLocation{Initial: l.Initial, Name: l.Name})
	}
	for _, t := range x.Transitions {
		g, err := lang.ParseGuard(t.Guard)
		if err != nil {
			return nil, fmt.Errorf("xmlio decode: transition %s->%s: %w", t.From, t.To, err)
		}
		var params []string
		if t.Params != "" {
			params = strings.Split(t.Params, ",")
		}
		var assigns []wiki.Assignment
		for _, a := range t.Assignments {
			expr, err := lang.ParseExpression(a.Source)
			if err != nil {
				return nil, fmt.Errorf("xmlio decode: assignment to %q: %w", a.To, err)
			}
			assigns = append(assigns, wiki.Assignment{To: a.To, From: expr})
		}
		w.Transitions = append(w.Transitions, wiki.WikiTransition{
			From:        t.From,
			Params:      params,
			Symbol:      t.Symbol,
			To:          t.To,
			Guard:       g,
			Assignments: assigns,
		})
	}
	return w, nil
}

func toXMLSymbols(in []wiki.WikiSymbol) []xmlSymbol {
	out := make([]xmlSymbol, len(in))
	for i, s := range in {
		params := make([]xmlParam, len(s.Params))
		for j, p := range s.Params {
			params[j] = xmlParam{Name: p.Name, Type: p.Type}
		}
		out[i] = xmlSymbol{Name: s.Name, Params: params}
	}
	return out
}

func fromXMLSymbols(in []xmlSymbol) []wiki.WikiSymbol {
	out := make([]wiki.WikiSymbol, len(in))
	for i, s := range in {
		params := make([]wiki.Param, len(s.Params))
		for j, p := range s.Params {
			params[j] = wiki.Param{Name: p.Name, Type: p.Type}
		}
		out[i] = wiki.WikiSymbol{Name: s.Name, Params: params}
	}
	return out
}

func toXMLRegisters(in []wiki.WikiRegister) []xmlRegister {
	out := make([]xmlRegister, len(in))
	for i, r := range in {
		out[i] = xmlRegister{Name: r.Name, Type: r.Type, Value: r.Value}
	}
	return out
}

func fromXMLRegisters(in []xmlRegister) []wiki.WikiRegister {
	out := make([]wiki.WikiRegister, len(in))
	for i, r := range in {
		out[i] = wiki.WikiRegister{Name: r.Name, Type: r.Type, Value: r.Value}
	}
	return out
}
