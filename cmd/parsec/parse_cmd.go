package main

import (
	"fmt"
	"io"
	"os"

	prettyjson "github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"

	"github.com/ashbridge/parsec"
	"github.com/ashbridge/parsec/html"
	jsongrammar "github.com/ashbridge/parsec/json"
)

var (
	parseLang   string
	parseFormat string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a file (or stdin) with a built-in grammar",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseLang, "lang", "json", "Grammar to parse with: json or html")
	parseCmd.Flags().StringVar(&parseFormat, "format", "text", "Output format: text or json")
}

func runParse(cmd *cobra.Command, args []string) error {
	var src []byte
	var err error
	if len(args) == 1 {
		src, err = os.ReadFile(args[0])
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fatal("%s", err.Error())
	}

	var value any
	switch parseLang {
	case "json":
		res := parsec.ParseAll(jsongrammar.Value(), parsec.NewTextInput(string(src)))
		if !res.Matches() {
			printParseError(res.ParseErr())
			os.Exit(1)
		}
		value = res.Value()
	case "html":
		value = html.Tokenize(string(src))
	default:
		fatal("unknown --lang %q, want json or html", parseLang)
	}
	return printValue(value)
}

// printParseError renders a syntax error with the line/column-anchored
// reporter rather than a bare Error() string.
func printParseError(err *parsec.ParseError[parsec.TextInput]) {
	fmt.Fprintln(os.Stderr, red(parsec.FormatInline(err)))
}

func printValue(value any) error {
	switch parseFormat {
	case "json":
		out, err := prettyjson.Marshal(value)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	default:
		fmt.Printf("%#v\n", value)
	}
	return nil
}
