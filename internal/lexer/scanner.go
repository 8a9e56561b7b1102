package lexer

import (
	"github.com/Manas1820/super-engine/internal/diag"
	"github.com/Manas1820/super-engine/internal/source"
	"github.com/Manas1820/super-engine/internal/token"
)

// Scanner turns one source text into a flat token sequence in a single
// pass. Errors do not stop the scan; they are collected alongside the
// tokens so a caller sees every lexical problem in the input at once.
type Scanner struct {
	cursor Cursor
	tokens []token.Token
	errs   diag.Bag
}

// New builds a scanner over text with the cursor at line 1, column 0.
func New(text string) *Scanner {
	return &Scanner{cursor: NewCursor(source.NewBuffer(text))}
}

// ScanTokens runs the whole pass and returns every token found, ending
// with exactly one EOF token whose lexeme is empty and whose position is
// the last consumed character. The cursor is not reset afterwards, so
// calling ScanTokens twice on the same Scanner is not supported.
func (s *Scanner) ScanTokens() []token.Token {
	for !s.cursor.AtEnd() {
		s.cursor.BeginLexeme()
		s.scanToken()
	}
	s.cursor.BeginLexeme()
	s.addToken(token.EOF)
	return s.tokens
}

// Tokens returns the tokens produced so far, in source order.
func (s *Scanner) Tokens() []token.Token {
	return s.tokens
}

// Errors returns the scan errors in detection order.
func (s *Scanner) Errors() []diag.ScanError {
	return s.errs.Items()
}

// HasErrors reports whether the pass found any lexical errors.
func (s *Scanner) HasErrors() bool {
	return !s.errs.Empty()
}

// scanToken consumes one lexeme and either emits a token, records an
// error, or discards insignificant text. Recovery is per character: an
// unrecognized character is reported and the scan moves on to the next.
func (s *Scanner) scanToken() {
	ch := s.cursor.Advance()
	switch ch {
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
		s.addEither('=', token.BangEqual, token.Bang)
	case '=':
		s.addEither('=', token.EqualEqual, token.Equal)
	case '<':
		s.addEither('=', token.LessEqual, token.Less)
	case '>':
		s.addEither('=', token.GreaterEqual, token.Greater)
	case '/':
		if s.cursor.Match('/') {
			s.skipLineComment()
		} else {
			s.addToken(token.Slash)
		}
	case ' ', '\r', '\t':
		// insignificant
	case '\n':
		s.cursor.line++
		s.cursor.column = 0
	case '"':
		s.scanString()
	default:
		switch {
		case isDigit(ch):
			s.scanNumber()
		case isIdentStart(ch):
			s.scanIdentOrKeyword()
		default:
			s.errs.Add(diag.UnexpectedCharacter(ch, s.cursor.line, s.cursor.column))
		}
	}
}

// addToken emits kind with the lexeme scanned since BeginLexeme. Line and
// column are read at emission, so a multi-character lexeme carries the
// position of its last character, not its first.
func (s *Scanner) addToken(kind token.Kind) {
	s.addLiteralToken(kind, token.Literal{})
}

func (s *Scanner) addLiteralToken(kind token.Kind, lit token.Literal) {
	s.tokens = append(s.tokens, token.Token{
		Kind:    kind,
		Lexeme:  s.cursor.Lexeme(),
		Literal: lit,
		Line:    s.cursor.line,
		Column:  s.cursor.column,
	})
}

// addEither emits two when the next character matches next, one otherwise.
// The lookahead character is only consumed on an exact match.
func (s *Scanner) addEither(next rune, two, one token.Kind) {
	if s.cursor.Match(next) {
		s.addToken(two)
	} else {
		s.addToken(one)
	}
}

// skipLineComment discards characters up to, but not including, the
// terminating newline. Comments never produce a token.
func (s *Scanner) skipLineComment() {
	for s.cursor.Peek() != '\n' && !s.cursor.AtEnd() {
		s.cursor.Advance()
	}
}
