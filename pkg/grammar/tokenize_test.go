package grammar_test

import (
	"testing"

	"github.com/S0L15/ProyectoFinalLFC/pkg/grammar"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		rhs      string
		expected grammar.Production
	}{
		{"aA", grammar.Production{"a", "A"}},
		{"A B", grammar.Production{"A", "B"}},
		{"epsilon", grammar.Production{"epsilon"}},
		{"id", grammar.Production{"id"}},
		{"id a", grammar.Production{"id", "a"}},
		{"A or B", grammar.Production{"A", "or", "B"}},
		{"not A", grammar.Production{"not", "A"}},
		{"true", grammar.Production{"true"}},
		{"(E)", grammar.Production{"(", "E", ")"}},
		{"  aB  ", grammar.Production{"a", "B"}},
		{"", grammar.Production{}},
	}

	for _, c := range cases {
		got := grammar.Tokenize(c.rhs)
		if len(got) != len(c.expected) {
			t.Errorf("Tokenize(%q): expected %v, got %v", c.rhs, c.expected, got)
			continue
		}
		for i := range got {
			if got[i] != c.expected[i] {
				t.Errorf("Tokenize(%q) symbol %d: expected %q, got %q", c.rhs, i, c.expected[i], got[i])
			}
		}
	}
}

func TestProductionIsEpsilon(t *testing.T) {
	cases := []struct {
		production grammar.Production
		expected   bool
	}{
		{grammar.Production{}, true},
		{grammar.Production{"epsilon"}, true},
		{grammar.Production{"a"}, false},
		{grammar.Production{"epsilon", "a"}, false},
	}

	for _, c := range cases {
		if got := c.production.IsEpsilon(); got != c.expected {
			t.Errorf("IsEpsilon(%v): expected %v, got %v", c.production, c.expected, got)
		}
	}
}
