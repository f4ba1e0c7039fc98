package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/CAIMEOX/CommandLisp/ast"
	"github.com/CAIMEOX/CommandLisp/parser"
)

func printTree(node *ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if node.IsList() {
		fmt.Printf("%s<%s>\n", indent, node.Type())
		children := node.List()
		for i := range children {
			printIndentedTree(children[i], indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s>%v</%s>\n", indent, node.Type(), node, node.Type())
}

func main() {
	input := `(+ 1 (- 20 4 -3) (+ x y))`

	root, err := parser.ParseString(input)
	if err != nil {
		log.Fatal("parser.ParseString:", err)
	}

	printTree(root)
}
