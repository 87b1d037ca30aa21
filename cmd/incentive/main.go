/*
main.go - Application entry point

PURPOSE:
  The incentive command. Runs the HTTP calculator service or a one-shot
  calculation from the terminal.

COMMANDS:
  serve    Start the HTTP API (graceful shutdown on SIGINT/SIGTERM)
  calc     Calculate a payout from flags and print the result table

GLOBAL FLAGS:
  --config   Path to a .toml or .yaml config file (optional)
  --env      Path to a .env file (default ".env", ignored when missing)

EXAMPLES:
  # Run with defaults on :8080
  incentive serve

  # Run with a config file on a different port
  incentive serve --config ./incentive.toml --port 3000

  # One-shot calculation
  incentive calc --nrv 30,00,000 --er 4,50,000 --er-new 0 --sih

SEE ALSO:
  - serve.go: HTTP server startup
  - calc.go: Terminal calculation
  - config/config.go: Configuration sources
*/
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
