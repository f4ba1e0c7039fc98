package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/peterh/liner"

	commandlisp "github.com/CAIMEOX/CommandLisp"
	"github.com/CAIMEOX/CommandLisp/diagram"
	"github.com/CAIMEOX/CommandLisp/parser"
)

const (
	appName     = "commandlisp"
	historyFile = ".commandlisp_history"
	prompt      = "> "
)

const usage = `usage: commandlisp [options]

options:
  -e EXPR  evaluate EXPR, print the result and exit
  -H FILE  history file (default ~/` + historyFile + `)
  -d       print evaluation traces to stderr
  -v       echo each parsed expression before its result
  -D       print the sample command block diagram at start-up
  -n       disable colors
  -h       show this help
`

type config struct {
	expr    string
	hasExpr bool
	history string
	debug   bool
	verbose bool
	diagram bool
	noColor bool
	help    bool
}

func parseFlags(args []string) (*config, error) {
	opts, optind, err := getopt.Getopts(args, "e:H:dvDnh")
	if err != nil {
		return nil, err
	}
	if optind < len(args) {
		return nil, fmt.Errorf("unexpected argument %q", args[optind])
	}

	cfg := &config{}
	for _, opt := range opts {
		switch opt.Option {
		case 'e':
			cfg.expr, cfg.hasExpr = opt.Value, true
		case 'H':
			cfg.history = opt.Value
		case 'd':
			cfg.debug = true
		case 'v':
			cfg.verbose = true
		case 'D':
			cfg.diagram = true
		case 'n':
			cfg.noColor = true
		case 'h':
			cfg.help = true
		}
	}

	if cfg.history == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.history = filepath.Join(home, historyFile)
		}
	}

	return cfg, nil
}

func main() {
	os.Exit(run(os.Args, os.Stdout))
}

func run(args []string, out io.Writer) int {
	cfg, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n%s", appName, err, usage)
		return 2
	}
	if cfg.help {
		fmt.Fprint(out, usage)
		return 0
	}

	if cfg.noColor {
		color.NoColor = true
	}
	if cfg.debug {
		commandlisp.SetLogger(log.New(os.Stderr, "eval: ", log.LstdFlags))
		parser.SetLogger(log.New(os.Stderr, "parser: ", log.LstdFlags))
	}
	if cfg.diagram {
		fmt.Fprint(out, diagram.Sample())
	}

	s := newSession(out, cfg.verbose)

	if cfg.hasExpr {
		if _, err := s.eval(cfg.expr); err != nil {
			return 1
		}
		return 0
	}

	return repl(s, cfg.history)
}

func repl(s *session, histPath string) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	fmt.Fprintf(s.out, "%s REPL. Ctrl+C cancels input, Ctrl+D exits. Type :help for commands.\n", appName)

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return 0
		}
		if err != nil {
			log.Printf("%s: %v", appName, err)
			return 1
		}

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if s.handle(line) {
			return 0
		}
	}
}
