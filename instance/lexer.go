package instance

// Lexer tokenizes instance file text into a stream of tokens.
//
// Unlike free-form languages, the instance format is line-oriented, so line
// terminators are emitted as tokens rather than skipped. Spaces, tabs, and
// carriage returns are insignificant separators.
type Lexer struct {
	src    []byte
	pos    int // current byte offset
	line   int // current line (1-based)
	col    int // current column (1-based)
	peeked *Token
}

// NewLexer creates a new Lexer for the given source bytes.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() Token {
	if l.peeked == nil {
		tok := l.scan()
		l.peeked = &tok
	}
	return *l.peeked
}

// Next returns the next token and advances the lexer.
func (l *Lexer) Next() Token {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok
	}
	return l.scan()
}

// SkipLine discards everything up to and including the next line
// terminator. Lines consumed this way are never tokenized, so they may
// contain arbitrary text (column headers, label words, punctuation).
// Fails with an ErrUnterminatedLine error if end of input is reached first.
func (l *Lexer) SkipLine() error {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		if tok.Kind == TokenNewline {
			return nil
		}
		// Any other peeked token was part of the line being discarded;
		// fall through and keep consuming raw bytes.
	}
	for {
		if l.atEnd() {
			return &ParseError{
				Kind:    ErrUnterminatedLine,
				Message: "end of input before line terminator",
				Pos:     l.currentPos(),
			}
		}
		if l.advance() == '\n' {
			return nil
		}
	}
}

func (l *Lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peekByte() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

// skipSpace consumes horizontal whitespace. Newlines are left alone: they
// are significant tokens.
func (l *Lexer) skipSpace() {
	for !l.atEnd() {
		ch := l.peekByte()
		if ch != ' ' && ch != '\t' && ch != '\r' {
			return
		}
		l.advance()
	}
}

func (l *Lexer) scan() Token {
	l.skipSpace()

	if l.atEnd() {
		return Token{Kind: TokenEOF, Pos: l.currentPos()}
	}

	pos := l.currentPos()
	ch := l.peekByte()

	switch {
	case ch == '\n':
		l.advance()
		return Token{Kind: TokenNewline, Literal: "\n", Pos: pos}
	case ch == '-' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1]):
		return l.scanInteger()
	case isDigit(ch):
		return l.scanInteger()
	case isIdentStart(ch):
		return l.scanIdent()
	}

	l.advance()
	return Token{Kind: TokenIllegal, Literal: string(ch), Pos: pos}
}

func (l *Lexer) scanInteger() Token {
	pos := l.currentPos()
	start := l.pos

	// Optional negative sign; a leading '+' is not part of the format.
	if l.peekByte() == '-' {
		l.advance()
	}
	for !l.atEnd() && isDigit(l.peekByte()) {
		l.advance()
	}

	return Token{Kind: TokenInteger, Literal: string(l.src[start:l.pos]), Pos: pos}
}

func (l *Lexer) scanIdent() Token {
	pos := l.currentPos()
	start := l.pos

	for !l.atEnd() && isIdentPart(l.peekByte()) {
		l.advance()
	}

	return Token{Kind: TokenIdent, Literal: string(l.src[start:l.pos]), Pos: pos}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
