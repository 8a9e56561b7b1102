package lexer

import "github.com/Manas1820/super-engine/internal/token"

// scanIdentOrKeyword consumes an identifier-shaped run and checks it
// against the reserved-word table. Reserved words are case-sensitive.
// true, false, and nil carry their fixed literal values; every other
// keyword carries none.
func (s *Scanner) scanIdentOrKeyword() {
	for isIdentContinue(s.cursor.Peek()) {
		s.cursor.Advance()
	}
	kind, ok := token.LookupKeyword(s.cursor.Lexeme())
	if !ok {
		s.addToken(token.Identifier)
		return
	}
	switch kind {
	case token.True:
		s.addLiteralToken(kind, token.BoolValue(true))
	case token.False:
		s.addLiteralToken(kind, token.BoolValue(false))
	case token.Nil:
		s.addLiteralToken(kind, token.NilValue())
	default:
		s.addToken(kind)
	}
}
