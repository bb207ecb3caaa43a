package grammar

import "strings"

// Epsilon is the terminal token denoting the empty string.
const Epsilon = "epsilon"

// EndMarker is the end-of-input terminal used in FOLLOW sets.
const EndMarker = "$"

// specialSymbols is the closed vocabulary of multi-character tokens that are
// treated as single atomic terminals. The tokenizer and classifier capture
// this set; it is never mutated at runtime.
var specialSymbols = map[string]bool{
	Epsilon: true,
	"id":    true,
	"or":    true,
	"not":   true,
	"and":   true,
	"true":  true,
	"false": true,
}

// IsSpecial reports whether a symbol belongs to the special terminal vocabulary.
func IsSpecial(symbol string) bool {
	return specialSymbols[symbol]
}

// Production is one right-hand side of a rule, as an ordered sequence of
// symbols. An empty Production, or one holding the single token "epsilon",
// derives the empty string.
type Production []string

// IsEpsilon reports whether the production derives the empty string directly.
func (p Production) IsEpsilon() bool {
	return len(p) == 0 || (len(p) == 1 && p[0] == Epsilon)
}

// String renders the production with its symbols space-separated.
func (p Production) String() string {
	if len(p) == 0 {
		return Epsilon
	}
	return strings.Join(p, " ")
}

// Grammar maps each non-terminal to its alternative productions. Declaration
// order is preserved; the first declared non-terminal is the start symbol.
type Grammar struct {
	order       []string
	productions map[string][]Production
}

// New creates an empty grammar.
func New() *Grammar {
	return &Grammar{
		order:       []string{},
		productions: map[string][]Production{},
	}
}

// AddRule declares a non-terminal with its alternative productions. Declaring
// the same non-terminal again appends to its alternatives.
func (g *Grammar) AddRule(nonTerminal string, alternatives ...Production) {
	if _, ok := g.productions[nonTerminal]; !ok {
		g.order = append(g.order, nonTerminal)
	}
	g.productions[nonTerminal] = append(g.productions[nonTerminal], alternatives...)
}

// NonTerminals returns the non-terminal names in declaration order.
func (g *Grammar) NonTerminals() []string {
	return g.order
}

// Start returns the start symbol: the first declared non-terminal.
func (g *Grammar) Start() string {
	if len(g.order) == 0 {
		return ""
	}
	return g.order[0]
}

// Productions returns the alternatives of a non-terminal, nil if undeclared.
func (g *Grammar) Productions(nonTerminal string) []Production {
	return g.productions[nonTerminal]
}

// Declared reports whether the name is a declared non-terminal.
func (g *Grammar) Declared(name string) bool {
	_, ok := g.productions[name]
	return ok
}

// Len returns the number of declared non-terminals.
func (g *Grammar) Len() int {
	return len(g.order)
}
