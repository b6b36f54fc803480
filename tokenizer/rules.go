package tokenizer

import "bytes"

// matchFunc reports how many bytes at the start of src a rule accepts.
// complete is false when the rule started matching but ran out of input
// before its terminator.
type matchFunc func(src []byte) (n int, complete bool)

type rule struct {
	kind    TokenKind
	channel Channel
	match   matchFunc
}

// rules is ordered by priority. Earlier rules win ties in match length.
var rules = []rule{
	{TokenInt, ChannelDefault, literal("int")},
	{TokenMain, ChannelDefault, literal("main")},
	{TokenLParen, ChannelDefault, literal("(")},
	{TokenRParen, ChannelDefault, literal(")")},
	{TokenLBrace, ChannelDefault, literal("{")},
	{TokenRBrace, ChannelDefault, literal("}")},
	{TokenSemicolon, ChannelDefault, literal(";")},
	{TokenReturn, ChannelDefault, literal("return")},
	{TokenConst, ChannelDefault, matchDigits},
	{TokenComment, ChannelHidden, matchComment},
	{TokenDirective, ChannelHidden, matchDirective},
	{TokenWhitespace, ChannelHidden, matchWhitespace},
}

// match is the winning candidate at a cursor position.
type match struct {
	rule     *rule
	length   int
	complete bool
}

// longestMatch evaluates every rule against src and keeps the longest
// candidate. On equal lengths the first rule in table order is kept.
func longestMatch(table []rule, src []byte) (match, bool) {
	var best match
	found := false
	for i := range table {
		n, complete := table[i].match(src)
		if n <= 0 {
			continue
		}
		if !found || n > best.length {
			best = match{rule: &table[i], length: n, complete: complete}
			found = true
		}
	}
	return best, found
}

func literal(text string) matchFunc {
	lit := []byte(text)
	return func(src []byte) (int, bool) {
		if bytes.HasPrefix(src, lit) {
			return len(lit), true
		}
		return 0, false
	}
}

func matchDigits(src []byte) (int, bool) {
	n := 0
	for n < len(src) && isDigit(src[n]) {
		n++
	}
	return n, true
}

var (
	commentOpen  = []byte("/*")
	commentClose = []byte("*/")
)

// matchComment is non-greedy: it stops at the first */ after the opener.
func matchComment(src []byte) (int, bool) {
	if !bytes.HasPrefix(src, commentOpen) {
		return 0, false
	}
	end := bytes.Index(src[len(commentOpen):], commentClose)
	if end < 0 {
		return len(src), false
	}
	return len(commentOpen) + end + len(commentClose), true
}

// matchDirective leaves the terminating newline for the whitespace rule.
func matchDirective(src []byte) (int, bool) {
	if len(src) == 0 || src[0] != '#' {
		return 0, false
	}
	if nl := bytes.IndexByte(src, '\n'); nl >= 0 {
		return nl, true
	}
	return len(src), true
}

func matchWhitespace(src []byte) (int, bool) {
	n := 0
	for n < len(src) && isSpace(src[n]) {
		n++
	}
	return n, true
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}
