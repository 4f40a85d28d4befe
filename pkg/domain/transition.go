package domain

import "fmt"

// Transition is a single edge of the automaton.
// It is a comparable value: two transitions are equal iff all three fields are equal,
// which lets the Table store the relation as a set keyed by the struct itself.
type Transition struct {
	From   string `json:"from" yaml:"from"`
	Symbol string `json:"symbol" yaml:"symbol"`
	To     string `json:"to" yaml:"to"`
}

// String renders the transition in the text configuration format.
func (t Transition) String() string {
	return fmt.Sprintf("%s %s %s", t.From, t.Symbol, t.To)
}

// Record is one parsed configuration entry.
// Accepting marks the output state as accepting.
type Record struct {
	From      string `json:"from" yaml:"from" mapstructure:"from"`
	Symbol    string `json:"symbol" yaml:"symbol" mapstructure:"symbol"`
	To        string `json:"to" yaml:"to" mapstructure:"to"`
	Accepting bool   `json:"accept,omitempty" yaml:"accept,omitempty" mapstructure:"accept"`
}

// Transition projects the record onto its transition triple.
func (r Record) Transition() Transition {
	return Transition{From: r.From, Symbol: r.Symbol, To: r.To}
}

// Source is what a single configuration source contributes to the table.
type Source struct {
	// Name identifies the source (usually a file path) in logs and errors.
	Name string `json:"name"`

	// Initial is the designated initial state of this source's automaton.
	Initial string `json:"initial"`

	Records []Record `json:"records"`

	// Accepting lists states marked accepting independently of any record.
	Accepting []string `json:"accepting,omitempty"`
}
