// File: scanner.go
// Title: Character Scanner
// Description: Cursor over the characters of an expression. Positions are
//              counted in characters, not bytes, since the connectives are
//              multi-byte in UTF-8.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial scanner implementation

package parser

// Scanner walks the characters of an input string
type Scanner struct {
	input []rune
	pos   int
}

// NewScanner creates a scanner positioned at the first character
func NewScanner(input string) *Scanner {
	return &Scanner{input: []rune(input)}
}

// Peek returns the character at the cursor without advancing.
// ok is false at the end of input.
func (s *Scanner) Peek() (r rune, ok bool) {
	if s.pos >= len(s.input) {
		return 0, false
	}
	return s.input[s.pos], true
}

// Advance returns the character at the cursor and moves past it.
// ok is false at the end of input, and the cursor does not move.
func (s *Scanner) Advance() (r rune, ok bool) {
	r, ok = s.Peek()
	if ok {
		s.pos++
	}
	return r, ok
}

// Pos returns the cursor position in characters
func (s *Scanner) Pos() int {
	return s.pos
}

// Len returns the input length in characters
func (s *Scanner) Len() int {
	return len(s.input)
}
