package tokenizer

import "unicode/utf8"

// Tokenizer scans ifcc source text into tokens, one per call to Next.
//
// A Tokenizer is not safe for concurrent use. Independent instances share no
// state and may run in parallel.
type Tokenizer struct {
	src       []byte
	pos       int // current byte offset
	line      int // current line (1-based)
	col       int // current column (0-based)
	exhausted bool
	peeked    *scanResult
}

type scanResult struct {
	tok Token
	err error
}

// New creates a Tokenizer over src. The buffer must not be modified while
// the Tokenizer is in use.
func New(src []byte) *Tokenizer {
	return &Tokenizer{src: src, line: 1}
}

// NewString creates a Tokenizer over a string.
func NewString(src string) *Tokenizer {
	return New([]byte(src))
}

// Next returns the next token and advances past it.
//
// A non-nil error is always a *LexError describing the returned TokenError
// token; scanning may continue with the following call. Once EOF has been
// returned every later call returns EOF again.
func (t *Tokenizer) Next() (Token, error) {
	var res scanResult
	if t.peeked != nil {
		res = *t.peeked
		t.peeked = nil
	} else {
		res.tok, res.err = t.scan()
	}
	if res.tok.Kind == TokenEOF {
		t.exhausted = true
	}
	return res.tok, res.err
}

// Peek returns the next token without consuming it.
func (t *Tokenizer) Peek() (Token, error) {
	if t.peeked == nil {
		tok, err := t.scan()
		t.peeked = &scanResult{tok: tok, err: err}
	}
	return t.peeked.tok, t.peeked.err
}

// Exhausted reports whether Next has returned EOF.
func (t *Tokenizer) Exhausted() bool {
	return t.exhausted
}

func (t *Tokenizer) currentPos() Position {
	return Position{Line: t.line, Column: t.col, Offset: t.pos}
}

func (t *Tokenizer) atEnd() bool {
	return t.pos >= len(t.src)
}

// consume advances over the next n bytes and returns them as the lexeme.
func (t *Tokenizer) consume(n int) string {
	end := t.pos + n
	text := string(t.src[t.pos:end])
	for t.pos < end {
		r, size := utf8.DecodeRune(t.src[t.pos:end])
		t.pos += size
		if r == '\n' {
			t.line++
			t.col = 0
		} else {
			t.col++
		}
	}
	return text
}

func (t *Tokenizer) scan() (Token, error) {
	pos := t.currentPos()
	if t.atEnd() {
		return Token{Kind: TokenEOF, Channel: ChannelDefault, Pos: pos}, nil
	}

	m, ok := longestMatch(rules, t.src[t.pos:])
	if !ok {
		// Skip exactly one character and let the caller keep going.
		_, size := utf8.DecodeRune(t.src[t.pos:])
		text := t.consume(size)
		tok := Token{Kind: TokenError, Lexeme: text, Channel: ChannelHidden, Pos: pos}
		return tok, illegalCharacter(pos, text)
	}

	text := t.consume(m.length)
	if !m.complete {
		// Only a comment can be incomplete; it has consumed the rest of the input.
		tok := Token{Kind: TokenError, Lexeme: text, Channel: ChannelHidden, Pos: pos}
		return tok, unterminatedComment(pos, text)
	}

	return Token{Kind: m.rule.kind, Lexeme: text, Channel: m.rule.channel, Pos: pos}, nil
}
