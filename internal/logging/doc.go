// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// All output defaults to stderr; stdout belongs to calculator results.
//
// Example Usage:
//
//	base, err := logging.New(logging.Config{Level: "info"}, os.Stderr)
//	logger := base.ForSession(sess.ID())
//	logger.Calculation("=", "2+3*4", "14")
//	logger.Failure("=", "10/0", err)
package logging
