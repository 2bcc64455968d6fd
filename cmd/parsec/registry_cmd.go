package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashbridge/parsec"
	"github.com/ashbridge/parsec/html"
	jsongrammar "github.com/ashbridge/parsec/json"
	"github.com/ashbridge/parsec/registry"
)

// builtins is populated once, in the teacher corpus's style of wiring a
// fixed set of interpreters/modules at init time (c.f. risor/modules/all).
var builtins = registry.New[parsec.TextInput]()

func init() {
	builtins.Register("json.value", registry.Wrap[parsec.TextInput, any](jsongrammar.Value()))
	builtins.Register("html.tagOrText", registry.Wrap[parsec.TextInput, any](html.TagOrText()))
	builtins.Freeze()
}

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Inspect the built-in parser registry",
}

var registryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the names of the built-in parsers",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range builtins.Names() {
			fmt.Println(name)
		}
	},
}

func init() {
	registryCmd.AddCommand(registryListCmd)
}
