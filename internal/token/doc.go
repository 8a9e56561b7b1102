// Package token defines the lexical vocabulary of the scanner: token
// kinds, the reserved-word table, and the decoded literal values that
// string and number tokens carry.
//
// Invariants:
//   - Token.Lexeme is the exact source substring the token was read from.
//   - Only String, Number, True, False, and Nil tokens carry a non-zero
//     Literal; every other kind holds the zero Literal.
//   - Line and Column record the cursor position at emission, which for a
//     multi-character lexeme is the position of its last character.
//   - Reserved words and identifiers share one lexeme shape and diverge
//     only through LookupKeyword.
package token
