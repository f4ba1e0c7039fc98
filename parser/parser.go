package parser

import (
	"io"
	"log"
	"strconv"

	"github.com/CAIMEOX/CommandLisp/ast"
	"github.com/CAIMEOX/CommandLisp/lexer"
)

// MaxDepth is the maximum number of lists that can be open at once.
const MaxDepth = 256

var logger = log.New(io.Discard, "parser: ", log.LstdFlags)

// SetLogger sets the destination of parser trace messages.
func SetLogger(l *log.Logger) {
	logger = l
}

// Parser reads one expression from a sequence of tokens
type Parser struct {
	tokens []lexer.Token
	pos    int
	depth  int
}

// New creates a parser over the given tokens
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Rest returns the tokens that have not been consumed yet
func (p *Parser) Rest() []lexer.Token {
	return p.tokens[p.pos:]
}

func (p *Parser) peek() (*lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return nil, false
	}
	return &p.tokens[p.pos], true
}

func (p *Parser) next() (*lexer.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// Parse reads the next expression.
func (p *Parser) Parse() (*ast.Node, error) {
	tok, ok := p.next()
	if !ok {
		return nil, newError(ErrUnexpectedEnd, 0)
	}

	switch tok.Type() {
	case lexer.TokenOpenList:
		return p.readList(tok)
	case lexer.TokenCloseList:
		return nil, newError(ErrUnexpectedCloseParen, tok.Col())
	}

	return parseAtom(tok), nil
}

func (p *Parser) readList(open *lexer.Token) (*ast.Node, error) {
	if p.depth >= MaxDepth {
		return nil, newError(ErrTooDeep, open.Col())
	}
	p.depth++
	defer func() { p.depth-- }()

	list := ast.NewList(open)
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, newError(ErrUnterminatedList, open.Col())
		}
		if tok.Is(lexer.TokenCloseList) {
			p.pos++
			logger.Printf("list at col %d: %v", open.Col(), list)
			return list, nil
		}

		node, err := p.Parse()
		if err != nil {
			return nil, err
		}
		if err := list.Push(node); err != nil {
			return nil, err
		}
	}
}

// parseAtom turns a token into a number when its text is a base-10 32-bit
// integer, or a symbol otherwise.
func parseAtom(tok *lexer.Token) *ast.Node {
	if n, err := strconv.ParseInt(tok.Text(), 10, 32); err == nil {
		return ast.NewNumber(tok, int32(n))
	}
	return ast.NewSymbol(tok, tok.Text())
}

// Parse reads one expression from tokens and returns it together with the
// tokens that follow it.
func Parse(tokens []lexer.Token) (*ast.Node, []lexer.Token, error) {
	p := New(tokens)

	node, err := p.Parse()
	if err != nil {
		return nil, nil, err
	}

	return node, p.Rest(), nil
}

// ParseString tokenizes and parses the first expression of in. Tokens past
// the first expression are ignored.
func ParseString(in string) (*ast.Node, error) {
	node, _, err := Parse(lexer.Tokenize(in))
	return node, err
}
