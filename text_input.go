package parsec

import (
	"fmt"
	"strings"
)

// TextInput is an Input[rune] enriched with 1-based line/column derivation
// and caret-annotated snippet rendering, for use by parsers over character
// streams (spec.md §3.1 "Subtype TextInput").
type TextInput struct {
	Input[rune]
	runes []rune // full backing text, used to derive lines/columns on demand
}

// NewTextInput builds a TextInput over an in-memory string.
func NewTextInput(text string, opts ...InputOption) TextInput {
	runes := []rune(text)
	return TextInput{Input: NewSliceInput(runes, opts...), runes: runes}
}

// NewRuneInput builds a TextInput over an already-decoded rune slice.
func NewRuneInput(runes []rune, opts ...InputOption) TextInput {
	cp := make([]rune, len(runes))
	copy(cp, runes)
	return TextInput{Input: NewSliceInput(cp, opts...), runes: cp}
}

// NewStreamTextInput builds a TextInput over a streaming rune source. Line
// and column derivation on a streaming TextInput is limited to positions
// already read; the snippet window similarly can only show materialized
// lines.
func NewStreamTextInput(read TokenReader[rune], opts ...InputOption) TextInput {
	return TextInput{Input: NewStreamInput(read, opts...)}
}

func (t TextInput) withInput(in Input[rune]) TextInput {
	return TextInput{Input: in, runes: t.runes}
}

// DescribeCurrent renders the rune at the cursor position as a quoted
// character, or "reached end of input" at EOF, overriding Input[rune]'s
// numeric rendering of the rune value.
func (t TextInput) DescribeCurrent() string {
	if t.IsEOF() {
		return "reached end of input"
	}
	return fmt.Sprintf("%q", string(t.Current()))
}

// Next advances the text cursor by one rune.
func (t TextInput) Next() TextInput {
	return t.withInput(t.Input.Next())
}

// Skip advances the text cursor by n runes, clamped to the end of input.
func (t TextInput) Skip(n int) TextInput {
	return t.withInput(t.Input.Skip(n))
}

// Line returns the 1-based line number of the cursor's position, derived by
// scanning the backing text from position 0 and counting newlines, exactly
// as spec.md §4.1 describes ("derived on demand by scanning from position
// 0 counting \n, 1-based").
func (t TextInput) Line() int {
	line := 1
	limit := t.Position()
	if limit > len(t.runes) {
		limit = len(t.runes)
	}
	for i := 0; i < limit; i++ {
		if t.runes[i] == '\n' {
			line++
		}
	}
	return line
}

// Column returns the 1-based column number of the cursor's position.
func (t TextInput) Column() int {
	col := 1
	limit := t.Position()
	if limit > len(t.runes) {
		limit = len(t.runes)
	}
	for i := limit - 1; i >= 0; i-- {
		if t.runes[i] == '\n' {
			break
		}
		col++
	}
	return col
}

// lineBounds returns the [start, end) rune-index bounds of the 1-based line
// number k, and whether that line exists.
func (t TextInput) lineBounds(k int) (int, int, bool) {
	if k < 1 {
		return 0, 0, false
	}
	line := 1
	start := 0
	for i := 0; i <= len(t.runes); i++ {
		if i == len(t.runes) || t.runes[i] == '\n' {
			if line == k {
				return start, i, true
			}
			line++
			start = i + 1
		}
	}
	return 0, 0, false
}

// GetLine returns the 1-based line number k's text, without its trailing
// newline, and whether that line exists.
func (t TextInput) GetLine(k int) (string, bool) {
	start, end, ok := t.lineBounds(k)
	if !ok {
		return "", false
	}
	return string(t.runes[start:end]), true
}

// Rest returns the remaining, not-yet-consumed text from the cursor
// position to the end of the backing source. Used by regexp-bridge
// parsers that need to match against more than a single line.
func (t TextInput) Rest() string {
	pos := t.Position()
	if pos > len(t.runes) {
		pos = len(t.runes)
	}
	return string(t.runes[pos:])
}

// GetSnippet renders a single-line window of `before` characters before and
// `after` characters after the cursor's position, clamped to the current
// line's bounds.
func (t TextInput) GetSnippet(before, after int) string {
	line := t.Line()
	start, end, ok := t.lineBounds(line)
	if !ok {
		return ""
	}
	col := t.Column()
	winStart := col - 1 - before
	if winStart < 0 {
		winStart = 0
	}
	winEnd := col - 1 + after
	lineLen := end - start
	if winEnd > lineLen {
		winEnd = lineLen
	}
	return string(t.runes[start+winStart : start+winEnd])
}

// GetFormattedSnippet renders lines [current_line-linesBefore,
// current_line+linesAfter] with left-padded line numbers, a separator, and
// a caret row indented to column-1 under the current line, per spec.md
// §4.1.
func (t TextInput) GetFormattedSnippet(linesBefore, linesAfter int) string {
	current := t.Line()
	first := current - linesBefore
	if first < 1 {
		first = 1
	}
	last := current + linesAfter

	// Determine the widest line number we'll print, for padding.
	width := len(fmt.Sprintf("%d", last))

	var b strings.Builder
	for ln := first; ln <= last; ln++ {
		text, ok := t.GetLine(ln)
		if !ok {
			break
		}
		fmt.Fprintf(&b, "%*d | %s\n", width, ln, text)
		if ln == current {
			fmt.Fprintf(&b, "%s | %s^\n", strings.Repeat(" ", width), strings.Repeat(" ", t.Column()-1))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
