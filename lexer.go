package xrm

import "fmt"

// TokenType defines the different tokens produced when scanning a
// resource line.
type TokenType int

const (
	TokenDot      TokenType = iota // '.'
	TokenStar                      // '*'
	TokenQuestion                  // '?'
	TokenName                      // [A-Za-z0-9_-]+
	TokenColon                     // ':'
	TokenValue                     // raw value text after the separator
	TokenEOF                       // end of input
)

// Token represents a single lexical token with type, value, and position.
type Token struct {
	Type     TokenType
	Value    string // the literal string for this token
	Position int    // starting position in the original line
}

// Lexer scans a single logical resource line and produces tokens.
// Everything after the colon separator is emitted verbatim as one
// TokenValue; escape decoding happens later.
type Lexer struct {
	input    string
	position int
	tokens   []Token
}

// NewLexer returns a new Lexer with the given input and initializes state.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		tokens: make([]Token, 0),
	}
}

// Tokenize processes the entire input and produces the list of tokens.
func (l *Lexer) Tokenize() ([]Token, error) {
	l.skipWhitespace()

	for l.position < len(l.input) {
		currentPos := l.position
		switch c := l.input[l.position]; {
		case c == '.':
			l.addToken(TokenDot, ".", currentPos)
			l.position++

		case c == '*':
			l.addToken(TokenStar, "*", currentPos)
			l.position++

		case c == '?':
			l.addToken(TokenQuestion, "?", currentPos)
			l.position++

		case c == ':':
			l.addToken(TokenColon, ":", currentPos)
			l.position++
			l.lexValue()

		case isNameChar(c):
			l.lexName(currentPos)

		case c == ' ' || c == '\t':
			// Whitespace inside the specifier is only valid directly
			// before the separator.
			l.skipWhitespace()
			if l.position < len(l.input) && l.input[l.position] != ':' {
				return nil, fmt.Errorf("%w: unexpected whitespace at column %d", ErrMalformedSpecifier, currentPos)
			}

		default:
			return nil, fmt.Errorf("%w: illegal character %q at column %d", ErrMalformedSpecifier, c, currentPos)
		}
	}

	l.addToken(TokenEOF, "", l.position)
	return l.tokens, nil
}

// lexName scans consecutive name characters to produce one TokenName.
func (l *Lexer) lexName(startPos int) {
	start := l.position
	for l.position < len(l.input) && isNameChar(l.input[l.position]) {
		l.position++
	}
	l.addToken(TokenName, l.input[start:l.position], startPos)
}

// lexValue consumes the remainder of the line as the raw value. Leading
// spaces and tabs after the colon are discarded.
func (l *Lexer) lexValue() {
	for l.position < len(l.input) && (l.input[l.position] == ' ' || l.input[l.position] == '\t') {
		l.position++
	}
	l.addToken(TokenValue, l.input[l.position:], l.position)
	l.position = len(l.input)
}

func (l *Lexer) skipWhitespace() {
	for l.position < len(l.input) && (l.input[l.position] == ' ' || l.input[l.position] == '\t') {
		l.position++
	}
}

// addToken is a helper to append a new token to the lexer's token list.
func (l *Lexer) addToken(tokenType TokenType, value string, pos int) {
	l.tokens = append(l.tokens, Token{
		Type:     tokenType,
		Value:    value,
		Position: pos,
	})
}

// isNameChar reports whether c may appear in a component name.
func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '-'
}
