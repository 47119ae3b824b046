// Package main is the entry point for the calculator REPL.
//
// The REPL reads one line at a time from stdin and writes results to
// stdout. Logs go to stderr.
//
// Input:
//
//	2 + 3 × 4          evaluate an arithmetic expression
//	sqrt 16            scientific operation (sqrt, pow, log, sin, cos, fact)
//	log 100 10         log with explicit base
//	const pi           named constant (pi, e, phi)
//	add 2 3            basic operation (add, sub, mul, div)
//	m+ 5, m- 2, mr, mc memory keys
//	pct 200+10         percent of the trailing number
//	neg 5*3            toggle the sign of the trailing number
//	:history [n]       show the most recent n records
//	:clear, :stats, :metrics, :help, :quit
//
// Configuration:
//   - Environment variables (CALC_*)
//   - Optional TOML file (-config)
//   - CLI flags (override both)
//
// Usage:
//
//	./calc -output json
//	./calc -scientific=false
//	./calc -config calc.toml
package main
