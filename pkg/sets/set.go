// Package sets computes the FIRST and FOLLOW sets of a context-free grammar
// by fixed-point iteration.
package sets

import "sort"

// Set is a set of terminal symbols (plus "epsilon" or "$" where applicable).
type Set map[string]bool

// add inserts a symbol and reports whether the set changed.
func (s Set) add(symbol string) bool {
	if s[symbol] {
		return false
	}
	s[symbol] = true
	return true
}

// addAll inserts every symbol of other except the excluded one, and reports
// whether the set changed.
func (s Set) addAll(other Set, exclude string) bool {
	changed := false
	for symbol := range other {
		if symbol == exclude {
			continue
		}
		if s.add(symbol) {
			changed = true
		}
	}
	return changed
}

// merge inserts every symbol of other and reports whether the set changed.
func (s Set) merge(other Set) bool {
	changed := false
	for symbol := range other {
		if s.add(symbol) {
			changed = true
		}
	}
	return changed
}

// Has reports membership.
func (s Set) Has(symbol string) bool {
	return s[symbol]
}

// Sorted returns the members in lexicographic order.
func (s Set) Sorted() []string {
	members := make([]string, 0, len(s))
	for symbol := range s {
		members = append(members, symbol)
	}
	sort.Strings(members)
	return members
}

// Equal reports whether two sets hold the same members.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for symbol := range s {
		if !other[symbol] {
			return false
		}
	}
	return true
}
