package diagnostics

import (
	"bytes"
	"testing"

	"github.com/martinemde/ifcc/tokenizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanErrors(t *testing.T, src string) []*tokenizer.LexError {
	t.Helper()
	s := tokenizer.NewStream(tokenizer.NewString(src))
	require.Error(t, s.Fill())
	return s.Errors()
}

func TestFromLexErrorIllegalCharacter(t *testing.T) {
	src := "int $main() { return 0; }"
	errs := scanErrors(t, src)
	require.Len(t, errs, 1)

	d := FromLexError("main.c", []byte(src), errs[0])
	assert.Equal(t, CodeIllegalCharacter, d.Code)
	assert.Equal(t, `illegal character "$"`, d.Message)
	assert.Equal(t, "main.c", d.Filename)
	assert.Equal(t, 4, d.Pos.Column)
	assert.Equal(t, 1, d.Length)
	assert.Empty(t, d.Help)
}

func TestFromLexErrorUnterminatedComment(t *testing.T) {
	src := "int main() /* open"
	errs := scanErrors(t, src)
	require.Len(t, errs, 1)

	d := FromLexError("main.c", []byte(src), errs[0])
	assert.Equal(t, CodeUnterminatedComment, d.Code)
	assert.Equal(t, 11, d.Pos.Column)
	assert.Equal(t, 2, d.Length)
	assert.Contains(t, d.Help, "*/")
}

func TestFromLexErrorSuggestsKeyword(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"Int main(){return 0;}", "int"},
		{"int mian(){return 0;}", "main"},
		{"int main(){retrun 0;}", "return"},
		{"int main(){RETURN 0;}", ""},
		{"int main(){x 0;}", ""},
	}
	for _, tt := range tests {
		errs := scanErrors(t, tt.src)
		d := FromLexError("main.c", []byte(tt.src), errs[0])
		if tt.want == "" {
			assert.Empty(t, d.Help, "input: %s", tt.src)
			continue
		}
		assert.Contains(t, d.Help, `"`+tt.want+`"`, "input: %s", tt.src)

		// Letters after the first one in the run get no suggestion.
		if len(errs) > 1 {
			rest := FromLexError("main.c", []byte(tt.src), errs[1])
			assert.Empty(t, rest.Help, "input: %s", tt.src)
		}
	}
}

func TestSuggestKeyword(t *testing.T) {
	kw, ok := suggestKeyword("retur")
	assert.True(t, ok)
	assert.Equal(t, "return", kw)

	_, ok = suggestKeyword("while")
	assert.False(t, ok)

	_, ok = suggestKeyword("")
	assert.False(t, ok)
}

func TestWordAt(t *testing.T) {
	src := []byte("int mian;")
	assert.Equal(t, "int", wordAt(src, 0))
	assert.Equal(t, "", wordAt(src, 1))
	assert.Equal(t, "mian", wordAt(src, 4))
	assert.Equal(t, "", wordAt(src, 8))
	assert.Equal(t, "", wordAt(src, 42))
}

func TestBagCounts(t *testing.T) {
	bag := NewBag()
	assert.False(t, bag.HasErrors())

	bag.Add(NewError("first"))
	bag.Add(NewError("second"))
	bag.Add(NewError("third"))

	assert.True(t, bag.HasErrors())
	assert.Equal(t, 3, bag.ErrorCount())
	require.Len(t, bag.Diagnostics(), 3)
	assert.Equal(t, "first", bag.Diagnostics()[0].Message)
}

func TestEmitterRendersExcerpt(t *testing.T) {
	src := "int main() {\n\treturn $0;\n}\n"
	errs := scanErrors(t, src)
	require.Len(t, errs, 1)

	var buf bytes.Buffer
	NewEmitter(&buf, []byte(src)).Emit(FromLexError("main.c", []byte(src), errs[0]))

	want := "main.c:2:9: error[L0001]: illegal character \"$\"\n" +
		"  |\n" +
		"2 | \treturn $0;\n" +
		"  | \t       ^\n"
	assert.Equal(t, want, buf.String())
}

func TestEmitterUnderlineClipsToLine(t *testing.T) {
	src := "int /*"
	errs := scanErrors(t, src)

	var buf bytes.Buffer
	NewEmitter(&buf, []byte(src)).Emit(FromLexError("a.c", []byte(src), errs[0]))
	assert.Contains(t, buf.String(), "  |     ^~\n")
	assert.Contains(t, buf.String(), "= help: add */ to close the comment")
}

func TestEmitterWithoutSource(t *testing.T) {
	var buf bytes.Buffer
	NewEmitter(&buf, nil).Emit(NewError("boom").WithCode("L9999"))
	assert.Equal(t, "error[L9999]: boom\n", buf.String())
}

func TestEmitAllSummary(t *testing.T) {
	src := "$ ?"
	bag := NewBag()
	for _, err := range scanErrors(t, src) {
		bag.Add(FromLexError("x.c", []byte(src), err))
	}

	var buf bytes.Buffer
	NewEmitter(&buf, []byte(src)).EmitAll(bag)
	assert.Contains(t, buf.String(), "x.c:1:1: error[L0001]")
	assert.Contains(t, buf.String(), "x.c:1:3: error[L0001]")
	assert.Contains(t, buf.String(), "Scan failed with 2 error(s)\n")
}

func TestEmitAllCleanBagWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	NewEmitter(&buf, []byte("int main(){return 0;}")).EmitAll(NewBag())
	assert.Empty(t, buf.String())
}
