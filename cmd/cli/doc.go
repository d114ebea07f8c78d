// Package cli constructs the m2prune command-line interface, wiring the Cobra
// root command, environment-driven configuration, and structured logging
// around the repository pruning service.
package cli
