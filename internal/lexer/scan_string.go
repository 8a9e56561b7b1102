package lexer

import (
	"github.com/Manas1820/super-engine/internal/diag"
	"github.com/Manas1820/super-engine/internal/token"
)

// scanString consumes a string literal after its opening quote. A quote
// preceded by a backslash does not terminate the literal. Strings may
// span lines; each interior newline bumps the line counter but leaves
// the column alone. The literal value is the raw text strictly between
// the quotes, with nothing decoded.
func (s *Scanner) scanString() {
	for s.cursor.Peek() != '"' && !s.cursor.AtEnd() {
		ch := s.cursor.Advance()
		if ch == '\n' {
			s.cursor.line++
			continue
		}
		if ch == '\\' && !s.cursor.AtEnd() {
			if s.cursor.Advance() == '\n' {
				s.cursor.line++
			}
		}
	}
	if s.cursor.AtEnd() {
		s.errs.Add(diag.UnterminatedString(s.cursor.line, s.cursor.column))
		return
	}
	s.cursor.Advance() // closing '"'
	value := s.cursor.src.Slice(s.cursor.start+1, s.cursor.current-1)
	s.addLiteralToken(token.String, token.StringValue(value))
}
