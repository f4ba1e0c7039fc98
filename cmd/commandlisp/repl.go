package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	commandlisp "github.com/CAIMEOX/CommandLisp"
	"github.com/CAIMEOX/CommandLisp/ast"
)

const helpText = `REPL commands:
  :env     List bound names
  :help    Show this help
  :quit    Exit the REPL
`

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	blue  = color.New(color.FgHiBlue).SprintFunc()
)

// session evaluates lines against one environment that lives as long as
// the REPL does.
type session struct {
	env     *commandlisp.Environment
	out     io.Writer
	verbose bool
}

func newSession(out io.Writer, verbose bool) *session {
	return &session{
		env:     commandlisp.NewEnvironment(),
		out:     out,
		verbose: verbose,
	}
}

// handle processes one line of input and reports whether the REPL should
// stop. Evaluation errors are printed and never stop the REPL.
func (s *session) handle(line string) bool {
	line = strings.TrimSpace(line)

	switch line {
	case "":
		return false
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprint(s.out, helpText)
		return false
	case ":env":
		fmt.Fprintln(s.out, blue(strings.Join(s.env.Names(), " ")))
		return false
	}

	_, _ = s.eval(line)
	return false
}

func (s *session) eval(line string) (*ast.Node, error) {
	node, err := commandlisp.Parse(line)
	if err != nil {
		s.printError(err)
		return nil, err
	}
	if s.verbose {
		fmt.Fprintln(s.out, blue(node.String()))
	}

	res, err := commandlisp.Eval(node, s.env)
	if err != nil {
		s.printError(err)
		return nil, err
	}

	fmt.Fprintln(s.out, green("=> "+res.String()))
	return res, nil
}

func (s *session) printError(err error) {
	fmt.Fprintln(s.out, red("error: "+err.Error()))
}
