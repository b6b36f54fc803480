// Package diagnostics turns lexical errors into compiler-style reports with
// a source excerpt and an underline.
package diagnostics

import (
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/martinemde/ifcc/tokenizer"
)

// Diagnostic codes for lexical errors.
const (
	CodeIllegalCharacter    = "L0001"
	CodeUnterminatedComment = "L0002"
)

// Diagnostic is one lexical error at a source location.
type Diagnostic struct {
	Code     string
	Message  string
	Filename string
	Pos      tokenizer.Position
	Length   int // characters to underline, at least 1 when rendered
	Help     string
}

// NewError creates a new error diagnostic
func NewError(message string) *Diagnostic {
	return &Diagnostic{Message: message}
}

// WithCode sets the diagnostic code
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithLocation sets the file, start position and underline length
func (d *Diagnostic) WithLocation(filename string, pos tokenizer.Position, length int) *Diagnostic {
	d.Filename = filename
	d.Pos = pos
	d.Length = length
	return d
}

// WithHelp sets a suggestion for fixing the problem
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

// FromLexError builds the diagnostic for a tokenizer error. src is the
// scanned buffer, used to look for misspelled keywords.
func FromLexError(filename string, src []byte, err *tokenizer.LexError) *Diagnostic {
	switch err.Code {
	case tokenizer.UnterminatedComment:
		return NewError("unterminated block comment").
			WithCode(CodeUnterminatedComment).
			WithLocation(filename, err.Pos, 2).
			WithHelp("add */ to close the comment")
	default:
		d := NewError(fmt.Sprintf("illegal character %q", err.Text)).
			WithCode(CodeIllegalCharacter).
			WithLocation(filename, err.Pos, 1)
		if kw, ok := suggestKeyword(wordAt(src, err.Pos.Offset)); ok {
			d.WithHelp(fmt.Sprintf("the only words in this language are int, main and return; did you mean %q?", kw))
		}
		return d
	}
}

var keywords = []string{"int", "main", "return"}

// suggestKeyword returns the keyword closest to word, if within two edits.
func suggestKeyword(word string) (string, bool) {
	if word == "" {
		return "", false
	}
	best, bestDist := "", 3
	for _, kw := range keywords {
		if d := fuzzy.LevenshteinDistance(word, kw); d < bestDist {
			best, bestDist = kw, d
		}
	}
	return best, best != ""
}

// wordAt returns the run of ASCII letters starting at offset. It returns ""
// when offset is inside a run, so only the first letter gets a suggestion.
func wordAt(src []byte, offset int) string {
	if offset < 0 || offset >= len(src) || !isLetter(src[offset]) {
		return ""
	}
	if offset > 0 && isLetter(src[offset-1]) {
		return ""
	}
	end := offset
	for end < len(src) && isLetter(src[end]) {
		end++
	}
	return string(src[offset:end])
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}
