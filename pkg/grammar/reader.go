package grammar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ruleSeparator splits a rule line into its left- and right-hand sides.
const ruleSeparator = " -> "

// ReadCases parses a batch of grammar cases from r.
//
// Format:
//
//	<number of cases>
//	then, per case:
//	<number of non-terminals k>
//	k rule lines:  <NT> -> <alt> | <alt> | ...
//
// Right-hand sides are tokenized with Tokenize. Errors carry the offending
// line number.
func ReadCases(r io.Reader) ([]*Grammar, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	nextLine := func() (string, error) {
		for scanner.Scan() {
			lineNo++
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				return line, nil
			}
		}
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}

	readCount := func(what string) (int, error) {
		line, err := nextLine()
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", what, err)
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: expected %s, got %q", lineNo, what, line)
		}
		if n < 0 {
			return 0, fmt.Errorf("line %d: negative %s %d", lineNo, what, n)
		}
		return n, nil
	}

	caseCount, err := readCount("case count")
	if err != nil {
		return nil, err
	}

	cases := make([]*Grammar, 0, caseCount)
	for c := 0; c < caseCount; c++ {
		ruleCount, err := readCount("non-terminal count")
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", c+1, err)
		}

		g := New()
		for i := 0; i < ruleCount; i++ {
			line, err := nextLine()
			if err != nil {
				return nil, fmt.Errorf("case %d: reading rule: %w", c+1, err)
			}

			lhs, rhs, ok := strings.Cut(line, ruleSeparator)
			if !ok {
				return nil, fmt.Errorf("line %d: rule %q is missing %q", lineNo, line, strings.TrimSpace(ruleSeparator))
			}

			lhs = strings.TrimSpace(lhs)
			if lhs == "" {
				return nil, fmt.Errorf("line %d: rule %q has an empty left-hand side", lineNo, line)
			}

			for _, alternative := range strings.Split(rhs, "|") {
				g.AddRule(lhs, Tokenize(alternative))
			}
		}
		cases = append(cases, g)
	}

	return cases, nil
}

// ReadCasesFile opens path and parses it with ReadCases.
func ReadCasesFile(path string) ([]*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cases, err := ReadCases(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}
