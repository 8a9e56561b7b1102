package token

// keywords maps each reserved word to its kind. Identifiers that are not
// in this table scan as Identifier.
var keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// LookupKeyword reports whether ident is a reserved word and, if so, which
// kind it scans as. Matching is exact; reserved words are all lowercase.
func LookupKeyword(ident string) (Kind, bool) {
	kind, ok := keywords[ident]
	return kind, ok
}
