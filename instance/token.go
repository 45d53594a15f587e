package instance

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF     TokenKind = iota
	TokenInteger           // -?[0-9]+
	TokenIdent             // [A-Za-z0-9_]+ not starting with a digit or '-'
	TokenNewline           // '\n' (significant: the grammar is line-oriented)
	TokenIllegal           // any other character
)

var tokenNames = map[TokenKind]string{
	TokenEOF:     "end of input",
	TokenInteger: "integer",
	TokenIdent:   "identifier",
	TokenNewline: "end of line",
	TokenIllegal: "illegal character",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind    TokenKind
	Literal string // raw text of the token
	Pos     Position
}
