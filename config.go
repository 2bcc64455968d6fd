package parsec

import "fmt"

// WithCharWindow overrides FormatInline's single-line character window
// (spec.md §6 "Snippet window sizes": charsBefore, charsAfter).
func WithCharWindow(before, after int) ReportOption {
	return func(o *ReportOptions) {
		o.CharsBefore = before
		o.CharsAfter = after
	}
}

// snippetSource is satisfied by cursors (TextInput) that can render a
// single-line, character-windowed snippet around the current position.
type snippetSource interface {
	GetSnippet(before, after int) string
}

// FormatInline renders a ParseError as a single line: the location
// followed by a character-windowed snippet, as an alternative to Format's
// multi-line rendering (spec.md §6). Cursors that cannot render a
// character snippet fall back to Format's multi-line output.
func FormatInline[C Cursor](err *ParseError[C], opts ...ReportOption) string {
	if err == nil {
		return ""
	}
	options := defaultReportOptions()
	options.CharsBefore, options.CharsAfter = 8, 8
	for _, opt := range opts {
		opt(&options)
	}
	sn, ok := any(err.At).(snippetSource)
	if !ok {
		return FormatError[C](err)
	}
	loc := fmt.Sprintf("position %d", err.At.Position())
	if tl, ok := any(err.At).(textLocator); ok {
		loc = fmt.Sprintf("line %d position %d", tl.Line(), tl.Column())
	}
	return loc + ": " + sn.GetSnippet(options.CharsBefore, options.CharsAfter)
}
