package sets

import (
	"fmt"

	"github.com/S0L15/ProyectoFinalLFC/pkg/grammar"
)

// Follow computes the FOLLOW set of every non-terminal: the terminals that
// can appear immediately after it in some derivation from the start symbol,
// plus "$" where it can end the input. first must be the mapping produced by
// First for the same grammar.
//
// The start symbol is seeded with "$". For every occurrence of a non-terminal
// X inside a production, the engine walks the symbols after X: a terminal is
// added to FOLLOW(X) and ends the walk; a non-terminal contributes its FIRST
// set minus epsilon and ends the walk unless it is nullable. When the walk
// falls off the end of the production, FOLLOW of the production's own
// left-hand side flows into FOLLOW(X). Updates are applied in place, so later
// occurrences in the same pass see them; the loop repeats until a full pass
// changes nothing.
func Follow(g *grammar.Grammar, nonTerminals, terminals map[string]bool, first map[string]Set) (map[string]Set, error) {
	follows := map[string]Set{}
	for _, nt := range g.NonTerminals() {
		follows[nt] = Set{}
	}
	if start := g.Start(); start != "" {
		follows[start].add(grammar.EndMarker)
	}

	changed := true
	for changed {
		changed = false

		for _, lhs := range g.NonTerminals() {
			for _, production := range g.Productions(lhs) {
				for i, symbol := range production {
					if !nonTerminals[symbol] {
						if !terminals[symbol] {
							return nil, fmt.Errorf("undefined non-terminal %q in production %s -> %v", symbol, lhs, production)
						}
						continue
					}

					exhausted := true
					for _, next := range production[i+1:] {
						if terminals[next] {
							if follows[symbol].add(next) {
								changed = true
							}
							exhausted = false
							break
						}

						if !nonTerminals[next] {
							return nil, fmt.Errorf("undefined non-terminal %q in production %s -> %v", next, lhs, production)
						}

						if follows[symbol].addAll(first[next], grammar.Epsilon) {
							changed = true
						}
						if !first[next].Has(grammar.Epsilon) {
							exhausted = false
							break
						}
					}

					// X is last, or everything after it can vanish:
					// whatever follows the left-hand side follows X too.
					if exhausted {
						if follows[symbol].merge(follows[lhs]) {
							changed = true
						}
					}
				}
			}
		}
	}

	return follows, nil
}
