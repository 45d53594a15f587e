// Package instance implements a parser for VRPTW benchmark instance files.
//
// The accepted format is the line-oriented layout shared by the Solomon,
// Gehring-Homberger, and Li & Lim benchmark sets: an optional four-line
// descriptive header (instance name plus three label lines), a mandatory
// vehicle summary line (fleet size and per-vehicle capacity), an optional
// four-line separator block, and one or more node rows. A node row carries
// seven integer fields (id, x, y, demand, ready time, due date, service
// time) or nine (the same seven plus a pickup/delivery index pair used by
// pickup-and-delivery variants). Eight fields is never valid.
//
// The parser is structured as a hand-rolled recursive-descent parser with
// three layers:
//
//   - Lexer: converts raw bytes into a token stream; line terminators are
//     significant tokens because the grammar is line-oriented.
//   - Parser: sequences the line classifiers (header, vehicle summary,
//     separator block, node rows) and builds the Instance.
//   - Instance types: the output data structures (Instance, Node, Link).
//
// Parsing is a single forward pass with one-token lookahead and no
// backtracking. Any failure is fatal and reported with the 1-based line
// number of the offending input; there are no partial results. Non-fatal
// findings (mixed row widths, a non-positive fleet size) are the
// validator's concern:
//
//	inst, err := instance.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range instance.Validate(inst) {
//	    fmt.Println(d)
//	}
package instance
