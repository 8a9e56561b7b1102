package token

import "fmt"

// Token is one classified lexeme: its kind, the exact source text it was
// read from, the decoded literal value when the kind carries one, and the
// line and column recorded when the token was emitted.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal Literal
	Line    uint32
	Column  uint32
}

// String renders the token as "KIND lexeme literal".
func (t Token) String() string {
	return fmt.Sprintf("%s %s %s", t.Kind, t.Lexeme, t.Literal)
}

// IsLiteral reports whether the token carries a decoded value.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case String, Number, True, False, Nil:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case And, Class, Else, False, For, Fun, If, Nil,
		Or, Print, Return, Super, This, True, Var, While:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case LeftParen, RightParen, LeftBrace, RightBrace, Comma, Dot,
		Minus, Plus, Semicolon, Slash, Star,
		Bang, BangEqual, Equal, EqualEqual,
		Greater, GreaterEqual, Less, LessEqual:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool {
	return t.Kind == Identifier
}
