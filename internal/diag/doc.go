// Package diag holds the scanner's error values and the bag that collects
// them during a pass. Errors are plain values; the scanner records them
// and keeps scanning, so callers see every problem in the input, not just
// the first.
package diag
