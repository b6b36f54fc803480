package tokenizer

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a lexical error.
type ErrorCode int

const (
	IllegalCharacter ErrorCode = iota + 1
	UnterminatedComment
)

func (c ErrorCode) String() string {
	switch c {
	case IllegalCharacter:
		return "IllegalCharacter"
	case UnterminatedComment:
		return "UnterminatedComment"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against a *LexError of the same code.
var (
	ErrIllegalCharacter    = errors.New("illegal character")
	ErrUnterminatedComment = errors.New("unterminated comment")
)

// LexError reports a lexical error. Scanning always continues after one.
type LexError struct {
	Code    ErrorCode
	Message string
	Pos     Position
	Text    string // offending source text
}

func (e *LexError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *LexError) Unwrap() error {
	switch e.Code {
	case IllegalCharacter:
		return ErrIllegalCharacter
	case UnterminatedComment:
		return ErrUnterminatedComment
	default:
		return nil
	}
}

func illegalCharacter(pos Position, text string) *LexError {
	return &LexError{
		Code:    IllegalCharacter,
		Message: fmt.Sprintf("illegal character %q", text),
		Pos:     pos,
		Text:    text,
	}
}

func unterminatedComment(pos Position, text string) *LexError {
	return &LexError{
		Code:    UnterminatedComment,
		Message: "unterminated block comment",
		Pos:     pos,
		Text:    text,
	}
}
