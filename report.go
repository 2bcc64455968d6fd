package parsec

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// textLocator is satisfied by cursor types (TextInput) that can render a
// line/column location and a caret-annotated snippet, letting FormatError
// choose the text-flavored rendering from spec.md §4.4.
type textLocator interface {
	Line() int
	Column() int
	GetFormattedSnippet(linesBefore, linesAfter int) string
}

// currentDescriber is satisfied by cursor types that can describe the
// token found at the current position, or report end of input.
type currentDescriber interface {
	DescribeCurrent() string
}

// DescribeCurrent renders the token at the cursor position, or "reached
// end of input" at EOF. Defined for Input[I] here; TextInput overrides it
// with a quoted-rune rendering in text_input.go.
func (in Input[I]) DescribeCurrent() string {
	tok, ok := in.src.At(in.pos)
	if !ok {
		return "reached end of input"
	}
	return fmt.Sprintf("%v", tok)
}

// ReportOptions configures FormatError/Format's rendering.
type ReportOptions struct {
	Color        bool
	LinesBefore  int
	LinesAfter   int
	CharsBefore  int
	CharsAfter   int
}

// ReportOption is a functional option for Format.
type ReportOption func(*ReportOptions)

// WithColor enables ANSI-colored caret/snippet rendering via
// github.com/fatih/color.
func WithColor(enabled bool) ReportOption {
	return func(o *ReportOptions) { o.Color = enabled }
}

// WithSnippetWindow overrides the formatted-snippet line window (spec.md
// §6 "Snippet window sizes").
func WithSnippetWindow(linesBefore, linesAfter int) ReportOption {
	return func(o *ReportOptions) {
		o.LinesBefore = linesBefore
		o.LinesAfter = linesAfter
	}
}

func defaultReportOptions() ReportOptions {
	return ReportOptions{LinesBefore: 1, LinesAfter: 1}
}

// FormatError renders a ParseError using the default report options. It is
// what Result.Error() delegates to.
func FormatError[C Cursor](err *ParseError[C]) string {
	return Format[C](err)
}

// Format renders a ParseError into spec.md §4.4's human-readable message:
// a location header, a snippet (for text inputs), and a deduplicated,
// depth-indented list of "expected X found Y" reasons.
func Format[C Cursor](err *ParseError[C], opts ...ReportOption) string {
	if err == nil {
		return ""
	}
	options := defaultReportOptions()
	for _, opt := range opts {
		opt(&options)
	}

	var b strings.Builder
	if tl, ok := any(err.At).(textLocator); ok {
		fmt.Fprintf(&b, "Error: line %d position %d\n", tl.Line(), tl.Column())
		snippet := tl.GetFormattedSnippet(options.LinesBefore, options.LinesAfter)
		if options.Color {
			snippet = colorizeSnippet(snippet)
		}
		b.WriteString(snippet)
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "Error at position %d\n", err.At.Position())
	}

	b.WriteString("Reasons at this location:\n")
	lines := dedupeLines(reasonLines[C](err, 0))
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

func colorizeSnippet(snippet string) string {
	caret := color.New(color.FgRed, color.Bold)
	lines := strings.Split(snippet, "\n")
	for i, l := range lines {
		if strings.Contains(l, "^") {
			lines[i] = caret.Sprint(l)
		}
	}
	return strings.Join(lines, "\n")
}

func describeFound[C Cursor](at C) string {
	if d, ok := any(at).(currentDescriber); ok {
		return d.DescribeCurrent()
	}
	return "unknown token"
}

func reasonLines[C Cursor](err *ParseError[C], depth int) []string {
	if err == nil {
		return nil
	}
	if len(err.Alternatives) > 0 {
		var out []string
		for _, alt := range err.Alternatives {
			out = append(out, reasonLines(alt, depth)...)
		}
		return out
	}

	label := strings.Join(err.Expected, " or ")
	if label == "" {
		label = "valid input"
	}
	found := describeFound[C](err.At)

	var prefix string
	if depth == 0 {
		prefix = "- "
	} else {
		prefix = strings.Repeat("  ", depth) + "- caused by: "
	}

	line := fmt.Sprintf("%sexpected %s found %s", prefix, label, found)
	lines := []string{line}
	if err.Cause != nil {
		lines = append(lines, reasonLines(err.Cause, depth+1)...)
	}
	return lines
}

func dedupeLines(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
