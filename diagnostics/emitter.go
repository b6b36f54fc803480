package diagnostics

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const lineNumberFormat = "%*d | "

// Emitter renders diagnostics against one source buffer.
//
//	main.c:1:5: error[L0001]: illegal character "$"
//	  |
//	1 | int $main() { return 0; }
//	  |     ^
//	  = help: ...
//
// Columns in the header are 1-based, as editors expect.
type Emitter struct {
	w     io.Writer
	lines []string
}

// NewEmitter creates an Emitter writing to w. src is the buffer the
// diagnostics point into; it may be nil, in which case excerpts are omitted.
func NewEmitter(w io.Writer, src []byte) *Emitter {
	var lines []string
	if src != nil {
		lines = strings.Split(string(src), "\n")
	}
	return &Emitter{w: w, lines: lines}
}

// Emit renders a single diagnostic.
func (e *Emitter) Emit(diag *Diagnostic) {
	e.printHeader(diag)
	e.printExcerpt(diag)
	if diag.Help != "" {
		fmt.Fprintf(e.w, "  = help: %s\n", diag.Help)
	}
}

// EmitAll renders every diagnostic in the bag followed by a summary line.
func (e *Emitter) EmitAll(bag *Bag) {
	for _, diag := range bag.Diagnostics() {
		e.Emit(diag)
	}
	if n := bag.ErrorCount(); n > 0 {
		fmt.Fprintf(e.w, "\nScan failed with %d error(s)\n", n)
	}
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	if diag.Filename != "" && diag.Pos.Line > 0 {
		fmt.Fprintf(e.w, "%s:%d:%d: ", diag.Filename, diag.Pos.Line, diag.Pos.Column+1)
	}
	fmt.Fprint(e.w, "error")
	if diag.Code != "" {
		fmt.Fprintf(e.w, "[%s]", diag.Code)
	}
	fmt.Fprintf(e.w, ": %s\n", diag.Message)
}

func (e *Emitter) printExcerpt(diag *Diagnostic) {
	if diag.Pos.Line < 1 || diag.Pos.Line > len(e.lines) {
		return
	}
	line := strings.TrimSuffix(e.lines[diag.Pos.Line-1], "\r")
	width := len(fmt.Sprintf("%d", diag.Pos.Line))
	gutter := strings.Repeat(" ", width) + " |"

	fmt.Fprintln(e.w, gutter)
	fmt.Fprintf(e.w, lineNumberFormat, width, diag.Pos.Line)
	fmt.Fprintln(e.w, line)
	fmt.Fprintf(e.w, "%s %s%s\n", gutter, padding(line, diag.Pos.Column), underline(line, diag.Pos.Column, diag.Length))
}

// padding reproduces the first col characters of line as blanks, keeping
// tabs so the underline lines up with the excerpt.
func padding(line string, col int) string {
	var sb strings.Builder
	i := 0
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
		i++
	}
	return sb.String()
}

// underline marks length characters from col, clipped to the end of line.
func underline(line string, col, length int) string {
	if length < 1 {
		length = 1
	}
	if remaining := utf8.RuneCountInString(line) - col; remaining >= 1 && length > remaining {
		length = remaining
	}
	if length == 1 {
		return "^"
	}
	return "^" + strings.Repeat("~", length-1)
}
