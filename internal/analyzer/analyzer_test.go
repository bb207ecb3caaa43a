package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/S0L15/ProyectoFinalLFC/pkg/grammar"
	"github.com/S0L15/ProyectoFinalLFC/pkg/sets"
)

func TestFormatSet(t *testing.T) {
	cases := []struct {
		set      sets.Set
		expected string
	}{
		{sets.Set{}, "{}"},
		{sets.Set{"a": true}, "{a}"},
		{sets.Set{"b": true, "a": true, "$": true}, "{$, a, b}"},
	}

	for _, c := range cases {
		if got := formatSet(c.set); got != c.expected {
			t.Errorf("formatSet(%v): expected %q, got %q", c.set, c.expected, got)
		}
	}
}

func TestWriteResults(t *testing.T) {
	g := grammar.New()
	g.AddRule("S", grammar.Tokenize("AB"))
	g.AddRule("A", grammar.Tokenize("a"), grammar.Tokenize("epsilon"))
	g.AddRule("B", grammar.Tokenize("b"))

	results := []caseResult{{
		grammar: g,
		firsts: map[string]sets.Set{
			"S": {"a": true, "b": true},
			"A": {"a": true, "epsilon": true},
			"B": {"b": true},
		},
		follows: map[string]sets.Set{
			"S": {"$": true},
			"A": {"b": true},
			"B": {"$": true},
		},
	}}

	path := filepath.Join(t.TempDir(), "pr_sig.out")
	if err := writeResults(path, results); err != nil {
		t.Fatalf("writeResults: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	expected := "1\n" +
		"3\n" +
		"Pr(S) = {a, b}\n" +
		"Pr(A) = {a, epsilon}\n" +
		"Pr(B) = {b}\n" +
		"Sig(S) = {$}\n" +
		"Sig(A) = {b}\n" +
		"Sig(B) = {$}\n"

	if string(data) != expected {
		t.Errorf("output mismatch:\nexpected:\n%s\ngot:\n%s", expected, data)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()

	input := "2\n" +
		"3\n" +
		"S -> AB\n" +
		"A -> a | epsilon\n" +
		"B -> b\n" +
		"1\n" +
		"S -> id\n"

	inputPath := filepath.Join(dir, "glcs.in")
	if err := os.WriteFile(inputPath, []byte(input), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := Analyzer{
		InputFile:  inputPath,
		OutputFile: filepath.Join(dir, "pr_sig.out"),
	}
	if err := opts.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(opts.OutputFile)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	expected := "2\n" +
		"3\n" +
		"Pr(S) = {a, b}\n" +
		"Pr(A) = {a, epsilon}\n" +
		"Pr(B) = {b}\n" +
		"Sig(S) = {$}\n" +
		"Sig(A) = {b}\n" +
		"Sig(B) = {$}\n" +
		"1\n" +
		"Pr(S) = {id}\n" +
		"Sig(S) = {$}\n"

	if string(data) != expected {
		t.Errorf("output mismatch:\nexpected:\n%s\ngot:\n%s", expected, data)
	}
}

func TestRunUndefinedReference(t *testing.T) {
	dir := t.TempDir()

	inputPath := filepath.Join(dir, "glcs.in")
	if err := os.WriteFile(inputPath, []byte("1\n1\nS -> Xa\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := Analyzer{
		InputFile:  inputPath,
		OutputFile: filepath.Join(dir, "pr_sig.out"),
	}
	if err := opts.Run(); err == nil {
		t.Fatal("expected an error for a grammar referencing an undeclared non-terminal")
	}
}
