// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user or domain error (bad args, task not found).
	UserError = 1

	// ConfigError indicates a configuration error.
	ConfigError = 2

	// StoreError indicates a durable-storage failure.
	StoreError = 3
)
