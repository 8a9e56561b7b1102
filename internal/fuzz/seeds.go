package fuzztests

import (
	"strings"
	"testing"
)

// addCorpusSeeds gives the fuzzer a starting corpus that already touches
// every scan path: punctuation runs, operator pairs, the literal forms,
// comments, bad characters, and the unterminated-string recovery.
func addCorpusSeeds(f *testing.F) {
	seeds := []string{
		"",
		"(()",
		"(){},.-+;*",
		`"Coolstorm"`,
		"123.45",
		"123.",
		".5",
		"var x = 1;",
		`"unterminated`,
		"@#$",
		"// comment\nprint 1;",
		"\"multi\nline\"",
		"! != = == < <= > >=",
		"fun add(a, b) { return a + b; }",
		"\"say \\\"hi\\\"\"",
		"aαb",
		"class Breakfast < Toast { cook() { return this; } }",
		"1" + strings.Repeat("0", 320),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}
}
