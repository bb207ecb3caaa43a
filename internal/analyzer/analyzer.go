package analyzer

import (
	"fmt"
	"strings"

	"github.com/S0L15/ProyectoFinalLFC/pkg/color"
	"github.com/S0L15/ProyectoFinalLFC/pkg/grammar"
	"github.com/S0L15/ProyectoFinalLFC/pkg/sets"

	"github.com/charmbracelet/log"
)

type Analyzer struct {
	Help       bool   // Show help message
	Verbose    bool   // Enable verbose output
	NoColor    bool   // Disable colored output
	ConfigFile string // Path to an optional TOML config file
	InputFile  string // Path to the grammar cases file
	OutputFile string // Path to the results file
}

// caseResult holds everything the output collaborator needs for one grammar.
type caseResult struct {
	grammar *grammar.Grammar
	firsts  map[string]sets.Set
	follows map[string]sets.Set
}

// Run reads the grammar cases, computes FIRST and FOLLOW sets for each one,
// and writes the results file. With Verbose set, each case is also reported
// on the console.
func (opts *Analyzer) Run() error {
	log.Info("Processing file", "file", opts.InputFile)

	cases, err := grammar.ReadCasesFile(opts.InputFile)
	if err != nil {
		return fmt.Errorf("reading grammar cases: %w", err)
	}
	log.Info("Parsed grammar cases", "count", len(cases))

	results := make([]caseResult, 0, len(cases))
	for idx, g := range cases {
		nonTerminals, terminals := grammar.Classify(g)

		firsts, err := sets.First(g, nonTerminals, terminals)
		if err != nil {
			return fmt.Errorf("case %d: computing FIRST sets: %w", idx+1, err)
		}

		follows, err := sets.Follow(g, nonTerminals, terminals, firsts)
		if err != nil {
			return fmt.Errorf("case %d: computing FOLLOW sets: %w", idx+1, err)
		}

		if opts.Verbose {
			printCase(idx+1, g, firsts, follows)
		}

		results = append(results, caseResult{grammar: g, firsts: firsts, follows: follows})
	}

	if err := writeResults(opts.OutputFile, results); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	log.Info("Wrote results", "file", opts.OutputFile, "cases", len(results))

	return nil
}

// printCase reports one grammar and its computed sets on the console.
func printCase(number int, g *grammar.Grammar, firsts, follows map[string]sets.Set) {
	fmt.Println(color.BoldText(fmt.Sprintf("Case %d:", number)))

	fmt.Println(color.GreenText("Grammar:"))
	for _, nt := range g.NonTerminals() {
		alternatives := make([]string, 0, len(g.Productions(nt)))
		for _, production := range g.Productions(nt) {
			alternatives = append(alternatives, production.String())
		}
		fmt.Printf("%s -> %s\n", color.CyanText(nt), strings.Join(alternatives, " | "))
	}

	fmt.Println(color.GreenText("First sets:"))
	for _, nt := range g.NonTerminals() {
		fmt.Printf("%s: %s\n", color.CyanText(nt), color.YellowText(formatSet(firsts[nt])))
	}

	fmt.Println(color.GreenText("Follow sets:"))
	for _, nt := range g.NonTerminals() {
		fmt.Printf("%s: %s\n", color.CyanText(nt), color.YellowText(formatSet(follows[nt])))
	}

	fmt.Println(color.GrayText(strings.Repeat("-", 80)))
}
