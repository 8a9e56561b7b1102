package token

import "testing"

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{LeftParen, "LEFT_PAREN"},
		{RightParen, "RIGHT_PAREN"},
		{LeftBrace, "LEFT_BRACE"},
		{RightBrace, "RIGHT_BRACE"},
		{Comma, "COMMA"},
		{Dot, "DOT"},
		{Minus, "MINUS"},
		{Plus, "PLUS"},
		{Semicolon, "SEMICOLON"},
		{Slash, "SLASH"},
		{Star, "STAR"},
		{Bang, "BANG"},
		{BangEqual, "BANG_EQUAL"},
		{Equal, "EQUAL"},
		{EqualEqual, "EQUAL_EQUAL"},
		{Greater, "GREATER"},
		{GreaterEqual, "GREATER_EQUAL"},
		{Less, "LESS"},
		{LessEqual, "LESS_EQUAL"},
		{Identifier, "IDENTIFIER"},
		{String, "STRING"},
		{Number, "NUMBER"},
		{Nil, "NIL"},
		{While, "WHILE"},
		{EOF, "EOF"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestKindStringOutOfRange(t *testing.T) {
	if got := Kind(200).String(); got != "UNKNOWN" {
		t.Errorf("Kind(200).String() = %q, want UNKNOWN", got)
	}
}

func TestKindNamesCoverEveryKind(t *testing.T) {
	seen := make(map[string]Kind, len(kindNames))
	for k := LeftParen; k <= EOF; k++ {
		name := k.String()
		if name == "" || name == "UNKNOWN" {
			t.Errorf("Kind(%d) has no display name", k)
			continue
		}
		if prev, dup := seen[name]; dup {
			t.Errorf("Kind(%d) and Kind(%d) share the name %q", prev, k, name)
		}
		seen[name] = k
	}
}
