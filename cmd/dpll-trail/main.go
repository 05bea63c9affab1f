// Command dpll-trail reads a DIMACS CNF formula from standard input and
// writes its DIMACS solution to standard output.
//
// Usage:
//
//	dpll-trail < input.cnf
//
// There are no flags and no environment variables: it either prints the
// DIMACS result, or, on malformed input, a single comment line. The exit
// code is always zero.
package main

import (
	"os"

	"github.com/cholden-labs/dpll-trail"
)

func main() {
	clauses, err := saturday.ParseDIMACS(os.Stdin)
	if err != nil {
		os.Stdout.WriteString("c No Input Received\n")
		return
	}

	lits, ok := saturday.Satisfiable(clauses)
	saturday.WriteDIMACS(os.Stdout, &saturday.Result{SAT: ok, Literals: lits})
}
