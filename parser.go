package xrm

import (
	"fmt"
	"strings"
)

// Parser consumes tokens produced by the lexer and builds the
// component sequence of an entry or query.
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a new Parser instance.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseLine parses one logical line of resource text and classifies it.
// Blank lines and comments produce no entry; include directives are
// reported but not resolved.
func ParseLine(text string) (Line, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Line{Kind: LineBlank}, nil
	}

	switch trimmed[0] {
	case '!':
		return Line{Kind: LineComment}, nil
	case '#':
		path, err := parseInclude(trimmed)
		if err != nil {
			return Line{}, err
		}
		return Line{Kind: LineInclude, Include: path}, nil
	}

	entry, err := ParseEntry(text)
	if err != nil {
		return Line{}, err
	}
	return Line{Kind: LineEntry, Entry: entry}, nil
}

// ParseEntry parses a full resource entry: bindings, components, the
// colon separator, and the value. The value is stored decoded.
func ParseEntry(line string) (*Entry, error) {
	tokens, err := NewLexer(line).Tokenize()
	if err != nil {
		return nil, err
	}

	p := NewParser(tokens)
	comps, err := p.components(false)
	if err != nil {
		return nil, err
	}

	if p.peek().Type != TokenColon {
		return nil, fmt.Errorf("%w: missing ':' separator", ErrMalformedSpecifier)
	}
	p.current++

	value := ""
	if p.peek().Type == TokenValue {
		value = p.peek().Value
		p.current++
	}

	return &Entry{Components: comps, Value: DecodeValue(value)}, nil
}

// ParseQuery parses a fully qualified dotted component string as used
// for lookups. Wildcards, loose bindings, leading bindings, and values
// are rejected.
func ParseQuery(s string) ([]Component, error) {
	tokens, err := NewLexer(s).Tokenize()
	if err != nil {
		return nil, err
	}

	p := NewParser(tokens)
	comps, err := p.components(true)
	if err != nil {
		return nil, err
	}
	if p.peek().Type != TokenEOF {
		return nil, fmt.Errorf("%w: unexpected %q in query", ErrMalformedSpecifier, p.peek().Value)
	}
	return comps, nil
}

// parseSpecifier parses a bare specifier with no value, as accepted by
// PutResource. Wildcards and loose bindings are permitted.
func parseSpecifier(s string) ([]Component, error) {
	tokens, err := NewLexer(s).Tokenize()
	if err != nil {
		return nil, err
	}

	p := NewParser(tokens)
	comps, err := p.components(false)
	if err != nil {
		return nil, err
	}
	if p.peek().Type != TokenEOF {
		return nil, fmt.Errorf("%w: unexpected %q after specifier", ErrMalformedSpecifier, p.peek().Value)
	}
	return comps, nil
}

// components parses the (binding, component) sequence. In query mode
// only tight bindings and normal names are allowed, and the source
// must not start with an explicit binding.
func (p *Parser) components(query bool) ([]Component, error) {
	var comps []Component
	binding := BindTight
	haveBinding := false

	for {
		t := p.peek()
		switch t.Type {
		case TokenDot, TokenStar:
			if haveBinding {
				return nil, fmt.Errorf("%w: empty component at column %d", ErrMalformedSpecifier, t.Position)
			}
			if query {
				if t.Type == TokenStar {
					return nil, fmt.Errorf("%w: loose binding in query", ErrMalformedSpecifier)
				}
				if len(comps) == 0 {
					return nil, fmt.Errorf("%w: query starts with a binding", ErrMalformedSpecifier)
				}
			}
			if t.Type == TokenStar {
				binding = BindLoose
			}
			haveBinding = true
			p.current++

		case TokenName:
			if len(comps) > 0 && !haveBinding {
				return nil, fmt.Errorf("%w: missing binding at column %d", ErrMalformedSpecifier, t.Position)
			}
			comps = append(comps, Component{Binding: binding, Type: CompNormal, Name: t.Value})
			binding = BindTight
			haveBinding = false
			p.current++

		case TokenQuestion:
			if query {
				return nil, fmt.Errorf("%w: wildcard in query", ErrMalformedSpecifier)
			}
			if len(comps) > 0 && !haveBinding {
				return nil, fmt.Errorf("%w: missing binding at column %d", ErrMalformedSpecifier, t.Position)
			}
			comps = append(comps, Component{Binding: binding, Type: CompWildcard})
			binding = BindTight
			haveBinding = false
			p.current++

		default:
			if haveBinding {
				return nil, fmt.Errorf("%w: specifier ends with a binding", ErrMalformedSpecifier)
			}
			if len(comps) == 0 {
				return nil, fmt.Errorf("%w: no components", ErrMalformedSpecifier)
			}
			return comps, nil
		}
	}
}

// peek returns the current token without consuming it. The token list
// always ends with TokenEOF.
func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		return Token{Type: TokenEOF, Position: -1}
	}
	return p.tokens[p.current]
}

// parseInclude parses a '#include "path"' directive. The line is
// already trimmed and starts with '#'.
func parseInclude(line string) (string, error) {
	rest := strings.TrimSpace(line[1:])
	if !strings.HasPrefix(rest, "include") {
		return "", fmt.Errorf("%w: unknown directive %q", ErrMalformedSpecifier, line)
	}
	rest = strings.TrimSpace(rest[len("include"):])

	if len(rest) < 2 || rest[0] != '"' {
		return "", fmt.Errorf("%w: include path must be quoted", ErrMalformedSpecifier)
	}
	end := strings.IndexByte(rest[1:], '"')
	if end < 0 {
		return "", fmt.Errorf("%w: unterminated include path", ErrMalformedSpecifier)
	}
	path := rest[1 : 1+end]
	if strings.TrimSpace(rest[end+2:]) != "" {
		return "", fmt.Errorf("%w: trailing characters after include", ErrMalformedSpecifier)
	}
	return path, nil
}
