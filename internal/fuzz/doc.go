// Package fuzztests houses the Go fuzz harness that exercises the
// scanner on arbitrary inputs. Its goal is to smoke test robustness: no
// input may panic the pass or break the shape of the token stream.
package fuzztests
