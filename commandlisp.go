// Package commandlisp evaluates S-expressions against an environment of
// built-in commands.
package commandlisp

import (
	"github.com/CAIMEOX/CommandLisp/ast"
	"github.com/CAIMEOX/CommandLisp/parser"
)

// Parse reads the first expression of a line. Anything after it is
// ignored.
func Parse(line string) (*ast.Node, error) {
	return parser.ParseString(line)
}

// ParseEval parses one line of input and evaluates it against env.
func ParseEval(line string, env *Environment) (*ast.Node, error) {
	node, err := Parse(line)
	if err != nil {
		return nil, err
	}
	logger.Printf("parsed: %v", node)
	return Eval(node, env)
}
