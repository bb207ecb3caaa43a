package analyzer

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/S0L15/ProyectoFinalLFC/pkg/sets"
)

// writeResults renders every case into the results file:
//
//	<number of cases>
//	then, per case:
//	<number of non-terminals>
//	Pr(X) = {...}    one line per non-terminal, declaration order
//	Sig(X) = {...}   one line per non-terminal, declaration order
func writeResults(path string, results []caseResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d\n", len(results))

	for _, result := range results {
		fmt.Fprintf(w, "%d\n", result.grammar.Len())
		for _, nt := range result.grammar.NonTerminals() {
			fmt.Fprintf(w, "Pr(%s) = %s\n", nt, formatSet(result.firsts[nt]))
		}
		for _, nt := range result.grammar.NonTerminals() {
			fmt.Fprintf(w, "Sig(%s) = %s\n", nt, formatSet(result.follows[nt]))
		}
	}

	return w.Flush()
}

// formatSet renders a set as "{a, b, c}" with members sorted, so equal sets
// always render identically.
func formatSet(s sets.Set) string {
	return "{" + strings.Join(s.Sorted(), ", ") + "}"
}
