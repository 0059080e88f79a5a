package probe

import (
	"os"
)

// ShowHelp prints usage information for the probe tool.
func ShowHelp() {
	os.Stdout.WriteString(`Notes Probe
===========

Checks a running notes service from the outside: note acknowledgements,
method-not-allowed fallthrough, the always-failing API root, and the
notes index page.

Usage:
  go run ./cmd/probe [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -ids int
        Number of numeric note ids to probe; each also gets a uuid id (default 20)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 10s)
  -verbose
        Log every passing check
  -help
        Show this help message

Examples:
  go run ./cmd/probe
  go run ./cmd/probe -ids 500 -workers 16 -url http://localhost:8080
`)
}
