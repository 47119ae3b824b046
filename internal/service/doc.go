// Package service provides the tool registry the REPL dispatches through.
//
// The registry maintains a catalog of capability providers, resolves a
// typed command word to the tool that handles it, and answers help
// queries with relevance scoring.
//
// Components:
//   - Registry: thread-safe catalog keyed by service ID
//   - Provider: anything with a Definition()
//
// Discovery Algorithm:
//   - Tag and name matches score highest
//   - Description words and capabilities add to the score
//   - Category bonus for exact matches
//   - Score-based ranking, ties broken by service ID
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(basic.NewProvider())
//	svc, tool, ok := registry.Lookup("add")
//	services := registry.Discover("logarithm", 5)
package service
