package commandlisp

import (
	"fmt"
	"io"
	"log"

	"github.com/CAIMEOX/CommandLisp/ast"
)

var logger = log.New(io.Discard, "eval: ", log.LstdFlags)

// SetLogger sets the destination of evaluator trace messages.
func SetLogger(l *log.Logger) {
	logger = l
}

// Eval evaluates node against env. Symbols are resolved through env,
// numbers evaluate to themselves and a non-empty list applies the command
// its head evaluates to on its evaluated arguments. Env is never modified.
func Eval(node *ast.Node, env *Environment) (*ast.Node, error) {
	switch node.Type() {
	case ast.NodeTypeSymbol:
		logger.Printf("lookup %q", node.Symbol())
		return env.Lookup(node.Symbol())

	case ast.NodeTypeNumber:
		return node, nil

	case ast.NodeTypeList:
		return evalApplication(node.List(), env)

	case ast.NodeTypeCommand:
		return nil, ErrBareCommand
	}

	panic("unreachable")
}

func evalApplication(list []*ast.Node, env *Environment) (*ast.Node, error) {
	if len(list) == 0 {
		return nil, ErrEmptyApplication
	}

	head, err := Eval(list[0], env)
	if err != nil {
		return nil, err
	}
	if !head.Is(ast.NodeTypeCommand) {
		return nil, fmt.Errorf("%w, got %v", ErrNotApplicable, head)
	}

	args := make([]*ast.Node, 0, len(list)-1)
	for _, form := range list[1:] {
		arg, err := Eval(form, env)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	logger.Printf("apply %v to %v", list[0], args)
	return head.Command().Invoke(args)
}
