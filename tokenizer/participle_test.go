package tokenizer

import (
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// program is the whole grammar of the language.
type program struct {
	Result string `"int" "main" "(" ")" "{" "return" @CONST ";" "}"`
}

func newProgramParser(t *testing.T) *participle.Parser[program] {
	t.Helper()
	parser, err := participle.Build[program](
		participle.Lexer(Definition{}),
		participle.Elide("COMMENT", "DIRECTIVE", "WHITESPACE"),
	)
	require.NoError(t, err)
	return parser
}

func TestDefinitionSymbols(t *testing.T) {
	symbols := Definition{}.Symbols()
	assert.Equal(t, lexer.EOF, symbols["EOF"])
	assert.Equal(t, lexer.TokenType(TokenConst), symbols["CONST"])
	assert.Equal(t, lexer.TokenType(TokenWhitespace), symbols["WHITESPACE"])
	assert.Len(t, symbols, len(Kinds()))
}

func TestDefinitionParsesProgram(t *testing.T) {
	parser := newProgramParser(t)

	sources := []string{
		"int main(){return 0;}",
		"#include <stdio.h>\nint main ( ) {\n  /* the answer */\n  return 42 ;\n}\n",
	}
	want := []string{"0", "42"}
	for i, src := range sources {
		prog, err := parser.ParseString("main.c", src)
		require.NoError(t, err, "input: %q", src)
		assert.Equal(t, want[i], prog.Result)
	}
}

func TestDefinitionParsesFromReader(t *testing.T) {
	parser := newProgramParser(t)
	prog, err := parser.Parse("main.c", strings.NewReader("int main() { return 5; }"))
	require.NoError(t, err)
	assert.Equal(t, "5", prog.Result)
}

func TestDefinitionReportsLexError(t *testing.T) {
	parser := newProgramParser(t)
	_, err := parser.ParseString("main.c", "int main() { return $5; }")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "illegal character")
}

func TestDefinitionRejectsBadSyntax(t *testing.T) {
	parser := newProgramParser(t)
	_, err := parser.ParseString("main.c", "int main() { return; }")
	require.Error(t, err)
}

func TestDefinitionTokenPositions(t *testing.T) {
	lex, err := Definition{}.LexString("main.c", "int\n main")
	require.NoError(t, err)

	var tokens []lexer.Token
	for {
		tok, err := lex.Next()
		require.NoError(t, err)
		tokens = append(tokens, tok)
		if tok.EOF() {
			break
		}
	}
	require.Len(t, tokens, 4)
	assert.Equal(t, lexer.Position{Filename: "main.c", Offset: 0, Line: 1, Column: 1}, tokens[0].Pos)
	assert.Equal(t, lexer.Position{Filename: "main.c", Offset: 5, Line: 2, Column: 2}, tokens[2].Pos)
	assert.Equal(t, lexer.TokenType(TokenMain), tokens[2].Type)
	assert.Equal(t, "main", tokens[2].Value)
}
