package commandlisp

import (
	"fmt"
	"sort"

	"github.com/CAIMEOX/CommandLisp/ast"
)

// Environment maps symbol names to the expressions they are bound to.
type Environment struct {
	n map[string]*ast.Node
}

// NewEnvironment returns an environment seeded with the built-in commands.
func NewEnvironment() *Environment {
	env := newEmptyEnvironment()
	for name, cmd := range builtins {
		env.Define(name, ast.NewCommand(cmd))
	}
	return env
}

func newEmptyEnvironment() *Environment {
	return &Environment{
		n: make(map[string]*ast.Node),
	}
}

// Define binds name to value, replacing any previous binding. Source text
// has no way to reach it.
func (env *Environment) Define(name string, value *ast.Node) {
	env.n[name] = value
}

// Lookup returns the expression bound to name.
func (env *Environment) Lookup(name string) (*ast.Node, error) {
	if value, ok := env.n[name]; ok {
		return value, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnboundSymbol, name)
}

// Names returns all bound names in lexical order
func (env *Environment) Names() []string {
	names := make([]string, 0, len(env.n))
	for name := range env.n {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
