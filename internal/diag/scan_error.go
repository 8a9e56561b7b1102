package diag

import "fmt"

// ScanError describes one character sequence the scanner could not turn
// into a token, with the line and column the cursor had reached when the
// problem was found.
type ScanError struct {
	Message string
	Line    uint32
	Column  uint32
}

// Error renders the scanner's reporting format, "[line N] Error: message".
// The column is carried for callers that want it but is not part of the
// rendered text.
func (e ScanError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// UnexpectedCharacter builds the error for a character no token can start
// with.
func UnexpectedCharacter(ch rune, line, column uint32) ScanError {
	return ScanError{
		Message: fmt.Sprintf("Unexpected character: %c", ch),
		Line:    line,
		Column:  column,
	}
}

// UnterminatedString builds the error for a string literal still open when
// the source ends.
func UnterminatedString(line, column uint32) ScanError {
	return ScanError{
		Message: "Unterminated string.",
		Line:    line,
		Column:  column,
	}
}
