/*
File: rlox/scanner/scanner.go
*/

// Package scanner turns source text into a token stream. It scans code
// points, not bytes, so that the cursor arithmetic in §4.1 of the
// language's scanning rules holds for any UTF-8 input, not just ASCII.
package scanner

import (
	"strconv"
	"unicode"

	"github.com/akashmaji946/rlox/token"
)

// Scanner is a one-shot, single-pass cursor over source text. It holds no
// resources other than its input buffer and the token slice it builds.
type Scanner struct {
	source  []rune
	tokens  []token.Token
	start   int
	current int
	line    int
}

// New prepares a Scanner over the given source text.
func New(source string) *Scanner {
	return &Scanner{source: []rune(source), line: 1}
}

// ScanTokens consumes the entire source and returns the resulting token
// sequence, always ending in EOF with the final line number. Scanning
// stops at the first malformed character, string, number, or comment and
// reports it as an Error; no partial token slice is returned.
func (s *Scanner) ScanTokens() ([]token.Token, error) {
	for !s.isAtEnd() {
		s.start = s.current
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}
	s.tokens = append(s.tokens, token.New(token.EOF, "", s.line))
	return s.tokens, nil
}

func (s *Scanner) scanToken() error {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(token.LeftParen)
	case ')':
		s.addToken(token.RightParen)
	case '{':
		s.addToken(token.LeftBrace)
	case '}':
		s.addToken(token.RightBrace)
	case ',':
		s.addToken(token.Comma)
	case '.':
		s.addToken(token.Dot)
	case '-':
		s.addToken(token.Minus)
	case '+':
		s.addToken(token.Plus)
	case ';':
		s.addToken(token.Semicolon)
	case '*':
		s.addToken(token.Star)
	case '!':
		s.addToken(s.ifMatch('=', token.BangEqual, token.Bang))
	case '=':
		s.addToken(s.ifMatch('=', token.EqualEqual, token.Equal))
	case '<':
		s.addToken(s.ifMatch('=', token.LessEqual, token.Less))
	case '>':
		s.addToken(s.ifMatch('=', token.GreaterEqual, token.Greater))
	case '/':
		switch {
		case s.match('/'):
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		case s.match('*'):
			return s.blockComment()
		default:
			s.addToken(token.Slash)
		}
	case ' ', '\r', '\t':
		// no token
	case '\n':
		s.line++
	case '"':
		return s.string()
	default:
		switch {
		case unicode.IsDigit(c):
			return s.number()
		case isAlpha(c):
			s.identifier()
		default:
			return s.errorf("Unexpected character.")
		}
	}
	return nil
}

func (s *Scanner) blockComment() error {
	for {
		if s.isAtEnd() {
			return s.errorf("Unterminated comment.")
		}
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance()
			s.advance()
			return nil
		}
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
}

func (s *Scanner) string() error {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.isAtEnd() {
		return s.errorf("Unterminated string.")
	}
	s.advance() // closing quote
	value := string(s.source[s.start+1 : s.current-1])
	s.addLiteralToken(token.String, token.StringValue(value))
	return nil
}

func (s *Scanner) number() error {
	for unicode.IsDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && unicode.IsDigit(s.peekNext()) {
		s.advance()
		for unicode.IsDigit(s.peek()) {
			s.advance()
		}
	}
	text := string(s.source[s.start:s.current])
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return s.errorf("Malformed number.")
	}
	s.addLiteralToken(token.Number, token.NumberValue(value))
	return nil
}

func (s *Scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := string(s.source[s.start:s.current])
	if kind, ok := token.Keywords[text]; ok {
		switch kind {
		case token.True:
			s.addLiteralToken(kind, token.BooleanValue(true))
		case token.False:
			s.addLiteralToken(kind, token.BooleanValue(false))
		case token.Nil:
			s.addLiteralToken(kind, token.Nil)
		default:
			s.addToken(kind)
		}
		return
	}
	s.addToken(token.Identifier)
}

func (s *Scanner) ifMatch(expected rune, then, otherwise token.Kind) token.Kind {
	if s.match(expected) {
		return then
	}
	return otherwise
}

func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) advance() rune {
	c := s.source[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() rune {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) addToken(kind token.Kind) {
	text := string(s.source[s.start:s.current])
	s.tokens = append(s.tokens, token.New(kind, text, s.line))
}

func (s *Scanner) addLiteralToken(kind token.Kind, literal token.Literal) {
	text := string(s.source[s.start:s.current])
	s.tokens = append(s.tokens, token.NewLiteral(kind, text, literal, s.line))
}

func (s *Scanner) errorf(message string) error {
	return &Error{Line: s.line, Message: message}
}

func isAlpha(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || unicode.IsDigit(c)
}
