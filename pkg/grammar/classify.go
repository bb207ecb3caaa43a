package grammar

import "unicode"

// Classify partitions every symbol referenced by the grammar into
// non-terminals and terminals.
//
// Non-terminals are the declared rule names. A production symbol is a
// terminal when it belongs to the special vocabulary, or when it is neither
// a declared non-terminal nor an uppercase name. Classification is relative
// to one grammar: the same name can be a terminal in one case and a
// non-terminal in the next, so Classify must be rerun per case.
func Classify(g *Grammar) (nonTerminals map[string]bool, terminals map[string]bool) {
	nonTerminals = map[string]bool{}
	terminals = map[string]bool{}

	for _, nt := range g.NonTerminals() {
		nonTerminals[nt] = true
	}

	for _, nt := range g.NonTerminals() {
		for _, production := range g.Productions(nt) {
			for _, symbol := range production {
				if IsSpecial(symbol) {
					terminals[symbol] = true
				} else if !nonTerminals[symbol] && !isUpper(symbol) {
					terminals[symbol] = true
				}
			}
		}
	}

	return nonTerminals, terminals
}

// isUpper reports whether every rune of the symbol is uppercase.
func isUpper(symbol string) bool {
	if symbol == "" {
		return false
	}
	for _, r := range symbol {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
