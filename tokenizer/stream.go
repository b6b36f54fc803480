package tokenizer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/martinemde/ifcc/events"
)

// Stream buffers the tokens of one Tokenizer. It collects lexical errors,
// splits the channels and gives parsers lookahead over the default channel.
type Stream struct {
	tok      *Tokenizer
	id       string
	filename string
	emitter  *events.EventEmitter
	failFast bool

	tokens    []Token
	visible   []int // indices into tokens of default-channel tokens
	errs      []*LexError
	p         int // index into visible of LT(1)
	started   bool
	done      bool
	startedAt time.Time
}

// StreamOption configures a Stream.
type StreamOption func(*Stream)

// WithFilename names the source in events and diagnostics.
func WithFilename(name string) StreamOption {
	return func(s *Stream) { s.filename = name }
}

// WithEmitter reports scan progress to the given emitter.
func WithEmitter(emitter *events.EventEmitter) StreamOption {
	return func(s *Stream) { s.emitter = emitter }
}

// WithFailFast stops scanning at the first lexical error. The error token is
// kept and followed by an EOF at the error's end, so the stream is no longer
// lossless when input remains after the error.
func WithFailFast(enabled bool) StreamOption {
	return func(s *Stream) { s.failFast = enabled }
}

// NewStream wraps t. Every stream gets a fresh scan id.
func NewStream(t *Tokenizer, opts ...StreamOption) *Stream {
	s := &Stream{tok: t, id: uuid.New().String()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tokenize scans src to EOF and returns every token along with the joined
// lexical errors, if any.
func Tokenize(src []byte) ([]Token, error) {
	s := NewStream(New(src))
	err := s.Fill()
	return s.Tokens(), err
}

// ID returns the scan id carried by this stream's events.
func (s *Stream) ID() string {
	return s.id
}

// Filename returns the configured source name.
func (s *Stream) Filename() string {
	return s.filename
}

// Fill pulls tokens until EOF and returns the joined lexical errors.
func (s *Stream) Fill() error {
	for s.fetch() {
	}
	return s.Err()
}

// LT returns the k-th default-channel token ahead of the cursor, starting at
// 1. Negative k looks back. Past the end it keeps returning EOF. LT(0) and a
// lookback before the first token return a TokenInvalid token with a zero
// position, which no scan produces.
func (s *Stream) LT(k int) Token {
	switch {
	case k == 0:
		return Token{}
	case k < 0:
		idx := s.p + k
		if idx < 0 {
			return Token{}
		}
		return s.tokens[s.visible[idx]]
	}

	idx := s.p + k - 1
	for len(s.visible) <= idx && s.fetch() {
	}
	if idx >= len(s.visible) {
		idx = len(s.visible) - 1
	}
	return s.tokens[s.visible[idx]]
}

// Consume advances the cursor past LT(1). Consuming EOF is a no-op.
func (s *Stream) Consume() {
	if s.LT(1).Kind == TokenEOF {
		return
	}
	s.p++
}

// Tokens returns every token on both channels in source order.
func (s *Stream) Tokens() []Token {
	s.Fill()
	out := make([]Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Channel returns the tokens on one channel in source order.
func (s *Stream) Channel(ch Channel) []Token {
	s.Fill()
	var out []Token
	for _, tok := range s.tokens {
		if tok.Channel == ch {
			out = append(out, tok)
		}
	}
	return out
}

// Visible returns the parser-visible tokens, EOF included.
func (s *Stream) Visible() []Token {
	return s.Channel(ChannelDefault)
}

// Text concatenates every lexeme. Without fail-fast it equals the source.
func (s *Stream) Text() string {
	s.Fill()
	var sb strings.Builder
	for _, tok := range s.tokens {
		sb.WriteString(tok.Lexeme)
	}
	return sb.String()
}

// Errors returns the lexical errors seen so far, in source order.
func (s *Stream) Errors() []*LexError {
	out := make([]*LexError, len(s.errs))
	copy(out, s.errs)
	return out
}

// Err joins the lexical errors seen so far, or returns nil.
func (s *Stream) Err() error {
	errs := make([]error, 0, len(s.errs))
	for _, e := range s.errs {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

// fetch pulls one token from the tokenizer. It returns false once EOF has
// been buffered.
func (s *Stream) fetch() bool {
	if s.done {
		return false
	}
	if !s.started {
		s.started = true
		s.startedAt = time.Now()
		s.emit(events.ScanStartedEvent(s.id, s.filename, len(s.tok.src)))
	}

	tok, err := s.tok.Next()
	s.append(tok)

	if err != nil {
		var lexErr *LexError
		if errors.As(err, &lexErr) {
			s.errs = append(s.errs, lexErr)
			s.emit(events.LexErrorEvent(lexErr.Code.String(), lexErr.Message, lexErr.Pos.Line, lexErr.Pos.Column))
		}
		if s.failFast && tok.Kind != TokenEOF {
			s.append(Token{Kind: TokenEOF, Channel: ChannelDefault, Pos: s.tok.currentPos()})
			s.finish()
			return true
		}
	}

	if tok.Kind == TokenEOF {
		s.finish()
	}
	return true
}

func (s *Stream) append(tok Token) {
	s.tokens = append(s.tokens, tok)
	if tok.Channel == ChannelDefault {
		s.visible = append(s.visible, len(s.tokens)-1)
	}
	s.emit(events.TokenScannedEvent(tok.Kind.String(), tok.Lexeme, tok.Channel.String(), tok.Pos.Line, tok.Pos.Column))
}

func (s *Stream) finish() {
	s.done = true
	s.emit(events.ScanCompletedEvent(s.id, len(s.tokens), len(s.errs), time.Since(s.startedAt)))
}

func (s *Stream) emit(e events.Event) {
	if s.emitter != nil {
		s.emitter.Emit(e)
	}
}
