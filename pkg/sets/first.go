package sets

import (
	"fmt"

	"github.com/S0L15/ProyectoFinalLFC/pkg/grammar"
)

// First computes the FIRST set of every non-terminal: the terminals that can
// begin a string derived from it, plus "epsilon" if it can derive the empty
// string.
//
// The computation is a fixed point: passes over every production repeat until
// a full pass adds nothing. Sets only grow and are bounded by the terminal
// vocabulary, so the loop always terminates. A production symbol that is
// neither a terminal nor a declared non-terminal is a configuration fault and
// yields an error instead of a silently incomplete mapping.
func First(g *grammar.Grammar, nonTerminals, terminals map[string]bool) (map[string]Set, error) {
	firsts := map[string]Set{}
	for _, nt := range g.NonTerminals() {
		firsts[nt] = Set{}
	}

	changed := true
	for changed {
		changed = false

		for _, nt := range g.NonTerminals() {
			for _, production := range g.Productions(nt) {
				if production.IsEpsilon() {
					if firsts[nt].add(grammar.Epsilon) {
						changed = true
					}
					continue
				}

				exhausted := true
				for _, symbol := range production {
					if terminals[symbol] {
						if firsts[nt].add(symbol) {
							changed = true
						}
						exhausted = false
						break
					}

					if !nonTerminals[symbol] {
						return nil, fmt.Errorf("undefined non-terminal %q in production %s -> %v", symbol, nt, production)
					}

					if firsts[nt].addAll(firsts[symbol], grammar.Epsilon) {
						changed = true
					}
					if !firsts[symbol].Has(grammar.Epsilon) {
						// The symbol cannot vanish, so nothing further in
						// this production can appear first.
						exhausted = false
						break
					}
				}

				// Every symbol was nullable: the production itself can
				// derive the empty string.
				if exhausted {
					if firsts[nt].add(grammar.Epsilon) {
						changed = true
					}
				}
			}
		}
	}

	return firsts, nil
}
