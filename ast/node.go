package ast

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/CAIMEOX/CommandLisp/lexer"
)

var errNotAList = errors.New("nodes of type value can't accept children")

// Node represents an expression: a symbol, a number, a list of expressions
// or a built-in command.
type Node struct {
	nt  NodeType
	tok *lexer.Token
	v   interface{}
}

func newNode(nt NodeType, tok *lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		v:   v,
		tok: tok,
	}
}

// NewSymbol creates a node of type symbol. The token may be nil for nodes
// that were not read from source text.
func NewSymbol(tok *lexer.Token, name string) *Node {
	return newNode(NodeTypeSymbol, tok, name)
}

// NewNumber creates a node of type number
func NewNumber(tok *lexer.Token, n int32) *Node {
	return newNode(NodeTypeNumber, tok, n)
}

// NewList creates a node of type list holding the given elements
func NewList(tok *lexer.Token, elements ...*Node) *Node {
	list := make([]*Node, 0, len(elements))
	list = append(list, elements...)
	return newNode(NodeTypeList, tok, list)
}

// NewCommand wraps a built-in command into a node
func NewCommand(cmd Command) *Node {
	return newNode(NodeTypeCommand, nil, cmd)
}

// Push appends a child node to a node of type list.
func (n *Node) Push(node *Node) error {
	if !n.IsList() {
		return errNotAList
	}
	n.v = append(n.v.([]*Node), node)
	return nil
}

// Token returns the token the node was read from, if any
func (n *Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Is returns true if the node matches the given type
func (n *Node) Is(nt NodeType) bool {
	return n.nt == nt
}

// IsAtom returns true for symbols, numbers and commands
func (n *Node) IsAtom() bool {
	return n.nt&nodeTypeValue > 0
}

// IsList returns true if the node is of type list
func (n *Node) IsList() bool {
	return n.nt&nodeTypeVector > 0
}

// Symbol returns the name of a symbol node
func (n *Node) Symbol() string {
	return n.v.(string)
}

// Number returns the value of a number node
func (n *Node) Number() int32 {
	return n.v.(int32)
}

// List returns all the children elements of a list node
func (n *Node) List() []*Node {
	return n.v.([]*Node)
}

// Command returns the callable of a command node
func (n *Node) Command() Command {
	return n.v.(Command)
}

// Equal reports whether two trees have the same shape and atoms. Commands
// are only equal to themselves.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.nt != o.nt {
		return false
	}
	switch n.nt {
	case NodeTypeSymbol:
		return n.Symbol() == o.Symbol()
	case NodeTypeNumber:
		return n.Number() == o.Number()
	case NodeTypeList:
		a, b := n.List(), o.List()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	}
	return n == o
}

// String returns the display form of the node: lists are rendered with
// their elements joined by commas, e.g. "(1,2,3)".
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	switch n.nt {
	case NodeTypeSymbol:
		return n.Symbol()
	case NodeTypeNumber:
		return strconv.FormatInt(int64(n.Number()), 10)
	case NodeTypeList:
		items := make([]string, 0, len(n.List()))
		for _, item := range n.List() {
			items = append(items, item.String())
		}
		return "(" + strings.Join(items, ",") + ")"
	case NodeTypeCommand:
		return "Function {}"
	}
	return fmt.Sprintf("<%v>", n.nt)
}
