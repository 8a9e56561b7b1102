package lexer

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Manas1820/super-engine/internal/token"
)

// scanNumber consumes a maximal digit run with an optional fractional
// part. The dot is only consumed when a digit follows it, so a trailing
// dot is left for the next lexeme.
func (s *Scanner) scanNumber() {
	for isDigit(s.cursor.Peek()) {
		s.cursor.Advance()
	}
	if s.cursor.Peek() == '.' && isDigit(s.cursor.PeekNext()) {
		s.cursor.Advance() // '.'
		for isDigit(s.cursor.Peek()) {
			s.cursor.Advance()
		}
	}
	lexeme := s.cursor.Lexeme()
	// An over-range run is still a valid number; ParseFloat saturates
	// it to ±Inf and reports ErrRange alongside the usable value.
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// digit runs with at most one interior dot always parse
		panic(fmt.Errorf("number lexeme %q did not parse: %w", lexeme, err))
	}
	s.addLiteralToken(token.Number, token.NumberValue(value))
}
