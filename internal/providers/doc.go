// Package providers groups the calculator's capability providers.
//
// Each provider describes itself with Definition(), returning a
// types.Service whose tools carry the dispatch tag typed at the REPL.
//
// Available Providers:
//   - basic: add, sub, mul, div (always present)
//   - math: sqrt, pow, log, sin, cos, fact, const (scientific extension)
//
// The math provider also executes its operations and reports successful
// results to a common.Recorder, normally the owning session.
package providers
