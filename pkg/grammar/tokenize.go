package grammar

import "strings"

// Tokenize splits a right-hand side string into its ordered symbols.
//
// The string is first split on whitespace. A field matching the special
// terminal vocabulary is one atomic symbol; any other field is split into
// individual characters, one symbol each. This single rule handles both
// spaced notation ("S -> id a") and packed notation ("S -> aA"), and is the
// only tokenization used anywhere: the FIRST and FOLLOW engines operate on
// the resulting symbol sequence and never re-split strings.
func Tokenize(rhs string) Production {
	production := Production{}

	for _, field := range strings.Fields(rhs) {
		if IsSpecial(field) {
			production = append(production, field)
			continue
		}

		for _, r := range field {
			production = append(production, string(r))
		}
	}

	return production
}
