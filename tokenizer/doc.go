// Package tokenizer implements the lexical front end for the ifcc toy C
// subset.
//
// The language recognizes a closed set of lexemes, just enough for programs
// shaped like
//
//	int main() { return 42; }
//
// plus /* block */ comments, # directives and whitespace. There is no
// identifier token: any letter that does not start one of the literals int,
// main or return is an illegal character.
//
// The package is organized in three layers:
//
//   - Tokenizer: a pull scanner over an immutable buffer. Every call to Next
//     returns exactly one Token. Trivia is not skipped; it is emitted on the
//     hidden channel so the concatenated lexemes reproduce the input.
//   - Stream: a buffered view over a Tokenizer that collects errors, filters
//     channels and offers parser-style lookahead.
//   - Definition: an adapter exposing the Tokenizer to participle parsers.
//
// Usage:
//
//	s := tokenizer.NewStream(tokenizer.New(src))
//	s.Fill()
//	if err := s.Err(); err != nil {
//	    log.Fatal(err)
//	}
//	for _, tok := range s.Visible() {
//	    fmt.Println(tok.Kind, tok.Lexeme)
//	}
package tokenizer
