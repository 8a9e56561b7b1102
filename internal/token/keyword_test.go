package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		ident string
		want  Kind
	}{
		{"and", And},
		{"class", Class},
		{"else", Else},
		{"false", False},
		{"for", For},
		{"fun", Fun},
		{"if", If},
		{"nil", Nil},
		{"or", Or},
		{"print", Print},
		{"return", Return},
		{"super", Super},
		{"this", This},
		{"true", True},
		{"var", Var},
		{"while", While},
	}
	for _, tc := range cases {
		t.Run(tc.ident, func(t *testing.T) {
			got, ok := LookupKeyword(tc.ident)
			if !ok {
				t.Fatalf("LookupKeyword(%q) = miss, want %v", tc.ident, tc.want)
			}
			if got != tc.want {
				t.Fatalf("LookupKeyword(%q) = %v, want %v", tc.ident, got, tc.want)
			}
		})
	}
	if len(keywords) != len(cases) {
		t.Errorf("keyword table has %d entries, test covers %d", len(keywords), len(cases))
	}
}

func TestLookupKeywordMiss(t *testing.T) {
	for _, ident := range []string{
		"", "android", "classy", "iff", "Fun", "IF", "nil ", "whilee",
	} {
		if kind, ok := LookupKeyword(ident); ok {
			t.Errorf("LookupKeyword(%q) = %v, want miss", ident, kind)
		}
	}
}
