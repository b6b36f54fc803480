package tokenizer

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"
)

// Definition exposes the Tokenizer as a participle lexer. Symbol names are
// the kind names (INT_KW, CONST, WHITESPACE, ...), so grammars can elide the
// hidden kinds with participle.Elide("COMMENT", "DIRECTIVE", "WHITESPACE").
type Definition struct{}

var (
	_ lexer.Definition       = Definition{}
	_ lexer.BytesDefinition  = Definition{}
	_ lexer.StringDefinition = Definition{}
)

// Symbols maps kind names to participle token types.
func (Definition) Symbols() map[string]lexer.TokenType {
	symbols := map[string]lexer.TokenType{"EOF": lexer.EOF}
	for _, k := range Kinds() {
		if k == TokenEOF {
			continue
		}
		symbols[k.String()] = lexer.TokenType(k)
	}
	return symbols
}

// Lex reads r fully and scans it.
func (d Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexBytes(filename, src)
}

// LexBytes scans src.
func (Definition) LexBytes(filename string, src []byte) (lexer.Lexer, error) {
	return &participleLexer{filename: filename, tok: New(src)}, nil
}

// LexString scans src.
func (d Definition) LexString(filename string, src string) (lexer.Lexer, error) {
	return d.LexBytes(filename, []byte(src))
}

type participleLexer struct {
	filename string
	tok      *Tokenizer
}

// Next stops at the first lexical error; participle has no error channel.
func (l *participleLexer) Next() (lexer.Token, error) {
	tok, err := l.tok.Next()
	if err != nil {
		return lexer.Token{}, err
	}
	typ := lexer.TokenType(tok.Kind)
	if tok.Kind == TokenEOF {
		typ = lexer.EOF
	}
	return lexer.Token{
		Type:  typ,
		Value: tok.Lexeme,
		Pos: lexer.Position{
			Filename: l.filename,
			Offset:   tok.Pos.Offset,
			Line:     tok.Pos.Line,
			Column:   tok.Pos.Column + 1,
		},
	}, nil
}
