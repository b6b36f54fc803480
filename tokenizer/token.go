package tokenizer

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	// TokenInvalid is the zero value. No scan produces it.
	TokenInvalid TokenKind = iota
	TokenEOF
	TokenInt        // int
	TokenMain       // main
	TokenLParen     // (
	TokenRParen     // )
	TokenLBrace     // {
	TokenRBrace     // }
	TokenSemicolon  // ;
	TokenReturn     // return
	TokenConst      // [0-9]+
	TokenComment    // /* ... */
	TokenDirective  // #... up to the newline
	TokenWhitespace // [ \t\r\n]+
	TokenError      // one illegal character, or an unterminated comment
)

var tokenNames = map[TokenKind]string{
	TokenInvalid:    "INVALID",
	TokenEOF:        "EOF",
	TokenInt:        "INT_KW",
	TokenMain:       "MAIN_KW",
	TokenLParen:     "LPAREN",
	TokenRParen:     "RPAREN",
	TokenLBrace:     "LBRACE",
	TokenRBrace:     "RBRACE",
	TokenSemicolon:  "SEMI",
	TokenReturn:     "RETURN_KW",
	TokenConst:      "CONST",
	TokenComment:    "COMMENT",
	TokenDirective:  "DIRECTIVE",
	TokenWhitespace: "WHITESPACE",
	TokenError:      "ERROR",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Kinds returns every kind a scan can produce in declaration order, EOF
// first. TokenInvalid is not included.
func Kinds() []TokenKind {
	kinds := make([]TokenKind, 0, len(tokenNames)-1)
	for k := TokenEOF; k <= TokenError; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Channel separates parser-visible tokens from trivia.
type Channel int

const (
	ChannelDefault Channel = iota
	ChannelHidden
)

func (c Channel) String() string {
	switch c {
	case ChannelDefault:
		return "default"
	case ChannelHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Position tracks a source location.
type Position struct {
	Line   int // 1-based line number
	Column int // 0-based column, counted in characters
	Offset int // 0-based byte offset into source
}

// Token is a single lexical unit produced by the Tokenizer.
type Token struct {
	Kind    TokenKind
	Lexeme  string // exact source text, never decoded
	Channel Channel
	Pos     Position
}

// End returns the byte offset just past the token.
func (t Token) End() int {
	return t.Pos.Offset + len(t.Lexeme)
}

// Hidden reports whether the token is trivia for the parser.
func (t Token) Hidden() bool {
	return t.Channel == ChannelHidden
}
