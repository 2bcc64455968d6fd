// Command parsec is a thin CLI shell over the parsec engine: it parses a
// file with one of the built-in grammars (json, html) and prints either the
// decoded value or a human-readable syntax error. Grounded on
// deepnoodle-ai-risor/cmd/risor/main.go and root.go's cobra+viper+color
// wiring, generalized from a script interpreter to a parser front end.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
