// Package session owns the per-user state of a calculator: one history
// ledger, one memory cell and, optionally, the scientific operation set.
//
// A Session is created explicitly and torn down with Close. Nothing in
// this package is global; two sessions never share a ledger.
//
// Example:
//
//	s := session.New(session.WithScientific())
//	defer s.Close()
//
//	out, err := s.Calculate("2 + 3 × 4") // "14"
//	res := s.Perform("log", []float64{100, 10})
//	for _, r := range s.History().List(20) {
//	    fmt.Println(r)
//	}
package session
