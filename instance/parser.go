package instance

import (
	"fmt"
	"strconv"
)

// Parse parses instance file text and returns an Instance.
// Any error returned is a *ParseError.
func Parse(src []byte) (*Instance, error) {
	p := &parser{lex: NewLexer(src)}
	return p.parseInstance()
}

type parser struct {
	lex *Lexer
}

func (p *parser) peek() Token { return p.lex.Peek() }
func (p *parser) next() Token { return p.lex.Next() }

// parseInstance sequences the line classifiers: optional header, vehicle
// summary, optional separator block, node rows, end of input.
func (p *parser) parseInstance() (*Instance, error) {
	name, err := p.parseHeader()
	if err != nil {
		return nil, err
	}

	vehicles, capacity, err := p.parseVehicleSummary()
	if err != nil {
		return nil, err
	}

	if err := p.parseSeparatorBlock(); err != nil {
		return nil, err
	}

	nodes, err := p.parseRows()
	if err != nil {
		return nil, err
	}

	// Nothing may follow the last row.
	if tok := p.peek(); tok.Kind != TokenEOF {
		return nil, &ParseError{
			Kind:    ErrTrailingContent,
			Message: fmt.Sprintf("unexpected %s (%q) after last data row", tok.Kind, tok.Literal),
			Pos:     tok.Pos,
		}
	}

	return &Instance{
		Name:     name,
		Vehicles: vehicles,
		Capacity: capacity,
		Nodes:    nodes,
	}, nil
}

// parseHeader recognizes the optional four-line preamble: the instance name
// followed by three label lines that are never inspected. The choice is
// committed on the shape of the first token: an identifier starts a header,
// an integer means the file begins directly with the vehicle summary.
func (p *parser) parseHeader() (string, error) {
	tok := p.peek()
	switch tok.Kind {
	case TokenIdent:
		// Header present.
	case TokenIllegal:
		return "", &ParseError{
			Kind:    ErrMalformedIdentifier,
			Message: fmt.Sprintf("expected instance name or vehicle summary, found %q", tok.Literal),
			Pos:     tok.Pos,
		}
	default:
		// Integer, newline, or EOF: no header. The vehicle summary
		// classifier reports whatever is actually there.
		return "", nil
	}

	name := p.next().Literal

	// Rest of the name line, then the three label lines.
	for i := 0; i < 4; i++ {
		if err := p.lex.SkipLine(); err != nil {
			return "", err
		}
	}
	return name, nil
}

// parseVehicleSummary recognizes the mandatory fleet line: two integers
// (vehicle count, capacity) with any trailing text discarded.
func (p *parser) parseVehicleSummary() (int, int, error) {
	tok := p.peek()
	if tok.Kind != TokenInteger {
		return 0, 0, &ParseError{
			Kind:    ErrMissingVehicleSummary,
			Message: fmt.Sprintf("expected vehicle count, found %s (%q)", tok.Kind, tok.Literal),
			Pos:     tok.Pos,
		}
	}

	vehicles, err := p.integer()
	if err != nil {
		return 0, 0, err
	}
	capacity, err := p.integer()
	if err != nil {
		return 0, 0, err
	}

	if err := p.lex.SkipLine(); err != nil {
		return 0, 0, err
	}
	return vehicles, capacity, nil
}

// parseSeparatorBlock recognizes the optional cosmetic block between the
// summary and the data rows: one blank line followed by three lines that
// are discarded unconditionally. Presence is committed on a line terminator
// directly after the summary line; the block is all-or-nothing.
func (p *parser) parseSeparatorBlock() error {
	if p.peek().Kind != TokenNewline {
		return nil
	}
	p.next() // the blank line marker

	for i := 0; i < 3; i++ {
		if err := p.lex.SkipLine(); err != nil {
			pe := err.(*ParseError)
			return &ParseError{
				Kind:    ErrIncompleteSeparatorBlock,
				Message: fmt.Sprintf("separator block truncated after %d of 3 lines", i),
				Pos:     pe.Pos,
				Cause:   err,
			}
		}
	}
	return nil
}

// parseRows recognizes one or more data rows. Zero rows is a structural
// error.
func (p *parser) parseRows() ([]*Node, error) {
	var nodes []*Node
	for p.peek().Kind == TokenInteger {
		n, err := p.parseRow()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}

	if len(nodes) == 0 {
		tok := p.peek()
		return nil, &ParseError{
			Kind:    ErrMissingDataRows,
			Message: "expected at least one data row",
			Pos:     tok.Pos,
		}
	}
	return nodes, nil
}

// parseRow recognizes a single data row: seven mandatory integer fields
// and an all-or-nothing pickup/delivery pair. Exactly 7 or exactly 9
// fields are valid; 8 never is.
func (p *parser) parseRow() (*Node, error) {
	start := p.peek().Pos
	fields := make([]int, 0, 9)

	for {
		tok := p.peek()
		if tok.Kind == TokenNewline || tok.Kind == TokenEOF {
			break
		}
		if tok.Kind != TokenInteger {
			return nil, &ParseError{
				Kind:    ErrMalformedInteger,
				Message: fmt.Sprintf("expected integer field, found %s (%q)", tok.Kind, tok.Literal),
				Pos:     tok.Pos,
			}
		}
		v, err := p.integer()
		if err != nil {
			return nil, err
		}
		fields = append(fields, v)
	}

	// Consume the terminator. End of input doubles as the terminator for
	// the final row: real benchmark files often lack the trailing newline.
	if p.peek().Kind == TokenNewline {
		p.next()
	}

	if len(fields) != 7 && len(fields) != 9 {
		return nil, &ParseError{
			Kind:    ErrInvalidRowFieldCount,
			Message: fmt.Sprintf("expected 7 or 9 integer fields, have %d", len(fields)),
			Pos:     start,
		}
	}

	n := &Node{
		ID:      fields[0],
		X:       fields[1],
		Y:       fields[2],
		Demand:  fields[3],
		Ready:   fields[4],
		Due:     fields[5],
		Service: fields[6],
		Pos:     start,
	}
	if len(fields) == 9 {
		n.Link = &Link{Pickup: fields[7], Delivery: fields[8]}
	}
	return n, nil
}

// integer consumes the next token, requiring an integer, and converts it.
func (p *parser) integer() (int, error) {
	tok := p.next()
	if tok.Kind != TokenInteger {
		return 0, &ParseError{
			Kind:    ErrMalformedInteger,
			Message: fmt.Sprintf("expected integer, found %s (%q)", tok.Kind, tok.Literal),
			Pos:     tok.Pos,
		}
	}
	v, err := strconv.Atoi(tok.Literal)
	if err != nil {
		return 0, &ParseError{
			Kind:    ErrMalformedInteger,
			Message: fmt.Sprintf("integer %q out of range", tok.Literal),
			Pos:     tok.Pos,
			Cause:   err,
		}
	}
	return v, nil
}
