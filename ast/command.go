package ast

// Command is a built-in callable. It receives its arguments already
// evaluated.
type Command interface {
	Invoke(args []*Node) (*Node, error)
}

// CommandFunc adapts an ordinary function to the Command interface
type CommandFunc func(args []*Node) (*Node, error)

// Invoke calls fn(args)
func (fn CommandFunc) Invoke(args []*Node) (*Node, error) {
	return fn(args)
}

var _ = Command(CommandFunc(nil))
