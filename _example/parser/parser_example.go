package main

import (
	"log"
	"os"

	"github.com/CAIMEOX/CommandLisp/ast"
	"github.com/CAIMEOX/CommandLisp/parser"
)

func main() {
	input := `(+ 1 (- 20 4 -3) (+ x y))`

	root, err := parser.ParseString(input)
	if err != nil {
		log.Fatal("parser.ParseString:", err)
	}

	ast.Print(os.Stdout, root)
}
