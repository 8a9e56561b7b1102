package token

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LiteralKind tags the value carried by a Literal.
type LiteralKind uint8

const (
	LitNone LiteralKind = iota
	LitString
	LitNumber
	LitBool
	LitNil
)

// Literal is the decoded value of a literal-bearing token: the text of a
// string literal, the float64 value of a number literal, or the fixed
// values of true, false, and nil. The zero Literal carries nothing, which
// is what every non-literal token holds.
type Literal struct {
	Kind LiteralKind
	Str  string
	Num  float64
	Bool bool
}

// StringValue returns a literal carrying the decoded string text.
func StringValue(s string) Literal {
	return Literal{Kind: LitString, Str: s}
}

// NumberValue returns a literal carrying a numeric value.
func NumberValue(f float64) Literal {
	return Literal{Kind: LitNumber, Num: f}
}

// BoolValue returns a literal carrying true or false.
func BoolValue(v bool) Literal {
	return Literal{Kind: LitBool, Bool: v}
}

// NilValue returns the nil literal.
func NilValue() Literal {
	return Literal{Kind: LitNil}
}

// IsNone reports whether the literal carries no value.
func (l Literal) IsNone() bool {
	return l.Kind == LitNone
}

// String renders the carried value. Tokens without a literal render as
// "null", and integral numbers keep a trailing ".0" so they stay visibly
// floating point.
func (l Literal) String() string {
	switch l.Kind {
	case LitString:
		return l.Str
	case LitNumber:
		return formatNumber(l.Num)
	case LitBool:
		return strconv.FormatBool(l.Bool)
	case LitNil:
		return "nil"
	default:
		return "null"
	}
}

func formatNumber(f float64) string {
	s := fmt.Sprintf("%g", f)
	if math.IsInf(f, 0) {
		return s
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
