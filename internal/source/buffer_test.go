package source

import "testing"

func TestBufferIndexesByCharacter(t *testing.T) {
	// "αβc" is 5 bytes but 3 characters; positions must be character positions.
	b := NewBuffer("αβc")

	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}
	if got := b.At(0); got != 'α' {
		t.Errorf("At(0) = %q, want 'α'", got)
	}
	if got := b.At(1); got != 'β' {
		t.Errorf("At(1) = %q, want 'β'", got)
	}
	if got := b.At(2); got != 'c' {
		t.Errorf("At(2) = %q, want 'c'", got)
	}
}

func TestBufferSlice(t *testing.T) {
	tests := []struct {
		text       string
		start, end uint32
		want       string
	}{
		{"hello", 0, 5, "hello"},
		{"hello", 1, 4, "ell"},
		{"hello", 2, 2, ""},
		{`"Coolstorm"`, 1, 10, "Coolstorm"},
		{"αβc", 0, 2, "αβ"},
		{"αβc", 1, 3, "βc"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			b := NewBuffer(tt.text)
			if got := b.Slice(tt.start, tt.end); got != tt.want {
				t.Errorf("Slice(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestBufferEmpty(t *testing.T) {
	b := NewBuffer("")
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", b.Len())
	}
	if got := b.Slice(0, 0); got != "" {
		t.Errorf("Slice(0, 0) = %q, want empty", got)
	}
}
