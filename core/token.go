package core

import (
	"fmt"
	"strconv"
	"unicode"
)

type tokenKind int

const (
	UNKNOWN tokenKind = iota
	INVALID

	// grouping
	LEFT_PAREN
	RIGHT_PAREN

	// binary operators
	PLUS
	MINUS
	TIMES
	DIVIDE
	MODULUS

	// operands
	IDENTIFIER
	NUMBER_LITERAL

	// an already reduced cell fed back into the reducer
	VALUE
)

type position struct {
	col    int
	Offset int
}

func (p position) String() string {
	return fmt.Sprintf("[%d]", p.col)
}

type token struct {
	Kind    tokenKind
	Pos     position
	Payload string
	Length  uint

	// set by Classify for NUMBER_LITERAL and VALUE
	value int64
}

func (t token) String() string {
	switch t.Kind {
	case LEFT_PAREN:
		return "("
	case RIGHT_PAREN:
		return ")"

	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case TIMES:
		return "*"
	case DIVIDE:
		return "/"
	case MODULUS:
		return "%"

	case IDENTIFIER:
		return fmt.Sprintf("var(%s)", t.Payload)
	case NUMBER_LITERAL:
		return fmt.Sprintf("number(%d)", t.value)
	case VALUE:
		return fmt.Sprintf("value(%d)", t.value)
	case INVALID:
		return fmt.Sprintf("invalid(%s)", t.Payload)

	default:
		return fmt.Sprintf("raw(%s)", t.Payload)
	}
}

type tokenizer struct {
	source []rune
	index  int
}

func NewTokenizer(source string) tokenizer {
	return tokenizer{
		source: []rune(source),
		index:  0,
	}
}

func (t *tokenizer) isEOF() bool {
	return t.index >= len(t.source)
}

func (t *tokenizer) next() rune {
	char := t.source[t.index]
	t.index++
	return char
}

func (t *tokenizer) peek() rune {
	return t.source[t.index]
}

func (t *tokenizer) pos() position {
	return position{
		col:    t.index + 1,
		Offset: t.index,
	}
}

func (t *tokenizer) skipSpace() {
	for !t.isEOF() && unicode.IsSpace(t.peek()) {
		t.next()
	}
}

// Tokenize splits the source on runs of whitespace. Tokens are left
// unclassified, so "(x" is a single token.
func (t *tokenizer) Tokenize() []token {
	tokens := []token{}

	t.skipSpace()

	for !t.isEOF() {
		pos := t.pos()
		payload := []rune{}
		for !t.isEOF() && !unicode.IsSpace(t.peek()) {
			payload = append(payload, t.next())
		}

		tokens = append(tokens, token{
			Kind:    UNKNOWN,
			Pos:     pos,
			Payload: string(payload),
			Length:  uint(len(payload)),
		})

		t.skipSpace()
	}

	return tokens
}

// Classify tags a raw token with its kind. Tokens that fit no shape become
// INVALID; nothing here consults the variable store.
func Classify(tok token) token {
	if tok.Kind != UNKNOWN {
		return tok
	}

	switch tok.Payload {
	case "(":
		tok.Kind = LEFT_PAREN
		return tok
	case ")":
		tok.Kind = RIGHT_PAREN
		return tok
	case "+":
		tok.Kind = PLUS
		return tok
	case "-":
		tok.Kind = MINUS
		return tok
	case "*":
		tok.Kind = TIMES
		return tok
	case "/":
		tok.Kind = DIVIDE
		return tok
	case "%":
		tok.Kind = MODULUS
		return tok
	}

	switch {
	case allRunes(tok.Payload, unicode.IsDigit):
		n, err := strconv.ParseInt(tok.Payload, 10, 64)
		if err != nil {
			// non-ASCII digits or out of range
			tok.Kind = INVALID
			return tok
		}
		tok.Kind = NUMBER_LITERAL
		tok.value = n
	case allRunes(tok.Payload, unicode.IsLetter):
		tok.Kind = IDENTIFIER
	default:
		tok.Kind = INVALID
	}

	return tok
}

func allRunes(s string, pred func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if !pred(ch) {
			return false
		}
	}
	return true
}

func valueToken(v int64) token {
	return token{Kind: VALUE, value: v}
}
