// File: lexer.go
// Title: Logic Lexical Analyzer
// Description: Turns an expression into a token sequence before parsing
//              starts. Recognizes the five connectives, the literals true
//              and false, parentheses and spaces; anything else aborts.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	mdwast "github.com/msto63/boole/foundation/logic/ast"
)

// TokenType is the kind of a lexical token
type TokenType int

const (
	TokenOperand  TokenType = iota // true, false
	TokenOperator                  // ¬ ∧ ∨ → ↔
	TokenBracket                   // ( )
)

// String returns the token type name
func (tt TokenType) String() string {
	switch tt {
	case TokenOperand:
		return "OPERAND"
	case TokenOperator:
		return "OPERATOR"
	case TokenBracket:
		return "BRACKET"
	default:
		return "UNKNOWN"
	}
}

// Token is one lexical unit. Only the payload field matching Type is set.
type Token struct {
	Type     TokenType
	Value    bool
	Operator mdwast.OperatorType
	Bracket  mdwast.BracketType
	Position int // character offset in the input
}

// String returns the source text of the token
func (t Token) String() string {
	switch t.Type {
	case TokenOperand:
		if t.Value {
			return "true"
		}
		return "false"
	case TokenOperator:
		return fmt.Sprintf("'%c'", t.Operator.Symbol())
	default:
		return "'" + t.Bracket.String() + "'"
	}
}

// IsOperator reports whether t is an operator token of one of the given kinds
func (t Token) IsOperator(ops ...mdwast.OperatorType) bool {
	if t.Type != TokenOperator {
		return false
	}
	for _, op := range ops {
		if t.Operator == op {
			return true
		}
	}
	return false
}

// IsBracket reports whether t is the given bracket
func (t Token) IsBracket(b mdwast.BracketType) bool {
	return t.Type == TokenBracket && t.Bracket == b
}

// Lexer owns the token sequence of one input and a read cursor over it
type Lexer struct {
	tokens []Token
	cursor int
	length int // input length in characters
}

// NewLexer scans the whole input. The first invalid character or word
// fails the entire input; no tokens are returned in that case.
func NewLexer(text string) (*Lexer, error) {
	if !utf8.ValidString(text) {
		return nil, &LexError{
			Kind:     LexUnknownChar,
			Position: utf8.RuneCountInString(text[:firstInvalidByte(text)]),
			Char:     utf8.RuneError,
		}
	}

	s := NewScanner(text)
	tokens := make([]Token, 0, s.Len()/2+1)

	for {
		r, ok := s.Peek()
		if !ok {
			break
		}
		pos := s.Pos()

		if op, isOp := mdwast.OperatorFromSymbol(r); isOp {
			s.Advance()
			tokens = append(tokens, Token{Type: TokenOperator, Operator: op, Position: pos})
			continue
		}

		switch {
		case isLower(r):
			word := readWord(s)
			switch word {
			case "true":
				tokens = append(tokens, Token{Type: TokenOperand, Value: true, Position: pos})
			case "false":
				tokens = append(tokens, Token{Type: TokenOperand, Value: false, Position: pos})
			default:
				return nil, &LexError{Kind: LexOperandFormat, Position: pos, Text: word}
			}
		case r == '(':
			s.Advance()
			tokens = append(tokens, Token{Type: TokenBracket, Bracket: mdwast.BracketLeft, Position: pos})
		case r == ')':
			s.Advance()
			tokens = append(tokens, Token{Type: TokenBracket, Bracket: mdwast.BracketRight, Position: pos})
		case r == ' ':
			s.Advance()
		default:
			return nil, &LexError{Kind: LexUnknownChar, Position: pos, Char: r}
		}
	}

	return &Lexer{tokens: tokens, length: s.Len()}, nil
}

// Tokenize scans text and returns its tokens
func Tokenize(text string) ([]Token, error) {
	l, err := NewLexer(text)
	if err != nil {
		return nil, err
	}
	return l.Tokens(), nil
}

// Next returns the token at the cursor and advances; ok is false past the end
func (l *Lexer) Next() (tok Token, ok bool) {
	tok, ok = l.Peek()
	if ok {
		l.cursor++
	}
	return tok, ok
}

// Peek returns the token at the cursor without advancing
func (l *Lexer) Peek() (tok Token, ok bool) {
	if l.cursor >= len(l.tokens) {
		return Token{}, false
	}
	return l.tokens[l.cursor], true
}

// Len returns the number of tokens
func (l *Lexer) Len() int {
	return len(l.tokens)
}

// Tokens returns a copy of the token sequence
func (l *Lexer) Tokens() []Token {
	out := make([]Token, len(l.tokens))
	copy(out, l.tokens)
	return out
}

// End returns the character offset just past the input
func (l *Lexer) End() int {
	return l.length
}

func isLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// readWord consumes a maximal run of lowercase ASCII letters
func readWord(s *Scanner) string {
	var sb strings.Builder
	for {
		r, ok := s.Peek()
		if !ok || !isLower(r) {
			return sb.String()
		}
		s.Advance()
		sb.WriteRune(r)
	}
}

func firstInvalidByte(text string) int {
	for i, r := range text {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[i:]); size == 1 {
				return i
			}
		}
	}
	return len(text)
}
