package diag

import (
	"fmt"
	"io"
)

// Bag collects scan errors in the order they were found. The scanner keeps
// going after each error, so one pass over bad input can fill the bag with
// every problem at once.
type Bag struct {
	items []ScanError
}

// Add appends one error to the bag.
func (b *Bag) Add(e ScanError) {
	b.items = append(b.items, e)
}

// Len returns the number of collected errors.
func (b *Bag) Len() int {
	return len(b.items)
}

// Empty reports whether no errors were collected.
func (b *Bag) Empty() bool {
	return len(b.items) == 0
}

// Items returns the collected errors in insertion order.
// Do not modify the returned slice; it aliases the bag's storage.
func (b *Bag) Items() []ScanError {
	return b.items
}

// Fprint writes every collected error to w, one per line, in the
// "[line N] Error: message" format.
func (b *Bag) Fprint(w io.Writer) error {
	for _, e := range b.items {
		if _, err := fmt.Fprintln(w, e.Error()); err != nil {
			return err
		}
	}
	return nil
}
