package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/martinemde/ifcc/events"
	"github.com/martinemde/ifcc/tokenizer"
	"github.com/spf13/viper"
)

// readSource loads path, or stdin when path is "-".
func readSource(path string, stdin io.Reader) (string, []byte, error) {
	if path == "-" {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return "", nil, fmt.Errorf("reading stdin: %w", err)
		}
		return "<stdin>", src, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading source file: %w", err)
	}
	return path, src, nil
}

// newStream builds a stream whose progress goes to w per --verbose/--debug.
func newStream(w io.Writer, filename string, src []byte, failFast bool) *tokenizer.Stream {
	emitter := events.NewEventEmitter()
	emitter.On(terminalEventListener(w, viper.GetBool("verbose"), viper.GetBool("debug")))

	return tokenizer.NewStream(tokenizer.New(src),
		tokenizer.WithFilename(filename),
		tokenizer.WithEmitter(emitter),
		tokenizer.WithFailFast(failFast),
	)
}

var debugDump = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// terminalEventListener returns an event listener that prints scan progress.
func terminalEventListener(w io.Writer, verbose, debug bool) func(events.Event) {
	return func(e events.Event) {
		switch e.Type {
		case events.EventScanStarted:
			if verbose {
				filename, _ := e.Data["filename"].(string)
				size, _ := e.Data["size"].(int)
				id, _ := e.Data["id"].(string)
				fmt.Fprintf(w, "[scan] %s (%d bytes, id %s)\n", filename, size, id)
			}

		case events.EventTokenScanned:
			if debug {
				fmt.Fprint(w, "[token] ")
				debugDump.Fdump(w, e.Data)
			}

		case events.EventLexError:
			if verbose {
				msg, _ := e.Data["message"].(string)
				line, _ := e.Data["line"].(int)
				col, _ := e.Data["column"].(int)
				fmt.Fprintf(w, "[lex] %d:%d %s\n", line, col, msg)
			}

		case events.EventScanCompleted:
			if verbose {
				tokens, _ := e.Data["token_count"].(int)
				errs, _ := e.Data["error_count"].(int)
				fmt.Fprintf(w, "[scan] Completed: %d tokens, %d errors\n", tokens, errs)
			}
		}
	}
}

func selectChannel(s *tokenizer.Stream, channel string) ([]tokenizer.Token, error) {
	switch channel {
	case "all", "":
		return s.Tokens(), nil
	case "default":
		return s.Visible(), nil
	case "hidden":
		return s.Channel(tokenizer.ChannelHidden), nil
	default:
		return nil, fmt.Errorf("unknown channel %q (want all, default or hidden)", channel)
	}
}

// writeText prints one token per line: line:col KIND "lexeme" [hidden].
func writeText(w io.Writer, tokens []tokenizer.Token) {
	for _, tok := range tokens {
		fmt.Fprintf(w, "%d:%d %s %q", tok.Pos.Line, tok.Pos.Column, tok.Kind, tok.Lexeme)
		if tok.Hidden() {
			fmt.Fprint(w, " hidden")
		}
		fmt.Fprintln(w)
	}
}

type tokenJSON struct {
	Kind    string `json:"kind"`
	Lexeme  string `json:"lexeme"`
	Channel string `json:"channel"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Offset  int    `json:"offset"`
}

type errorJSON struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Text    string `json:"text"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Offset  int    `json:"offset"`
}

type reportJSON struct {
	ScanID   string      `json:"scan_id"`
	Filename string      `json:"filename"`
	Tokens   []tokenJSON `json:"tokens"`
	Errors   []errorJSON `json:"errors"`
}

func writeJSON(w io.Writer, s *tokenizer.Stream, tokens []tokenizer.Token) error {
	report := reportJSON{
		ScanID:   s.ID(),
		Filename: s.Filename(),
		Tokens:   make([]tokenJSON, 0, len(tokens)),
		Errors:   make([]errorJSON, 0),
	}
	for _, tok := range tokens {
		report.Tokens = append(report.Tokens, tokenJSON{
			Kind:    tok.Kind.String(),
			Lexeme:  tok.Lexeme,
			Channel: tok.Channel.String(),
			Line:    tok.Pos.Line,
			Column:  tok.Pos.Column,
			Offset:  tok.Pos.Offset,
		})
	}
	for _, e := range s.Errors() {
		report.Errors = append(report.Errors, errorJSON{
			Code:    e.Code.String(),
			Message: e.Message,
			Text:    e.Text,
			Line:    e.Pos.Line,
			Column:  e.Pos.Column,
			Offset:  e.Pos.Offset,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding token report: %w", err)
	}
	return nil
}
