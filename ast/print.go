package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Print writes a human-readable, indented representation of a node
func Print(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypeList:
		fmt.Fprintf(w, "[%d]\n", len(n.List()))
		list := n.List()
		for i := range list {
			printLevel(w, list[i], level+1)
		}

	default:
		fmt.Fprintf(w, "%v\n", n)
	}
}

// Encode transforms a node into source text that parses back into an
// equal tree. Commands have no source form and are encoded as their display
// placeholder.
func Encode(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case NodeTypeList:
		nodes := make([]string, 0, len(n.List()))
		for _, item := range n.List() {
			nodes = append(nodes, Encode(item))
		}
		return "(" + strings.Join(nodes, " ") + ")"

	case NodeTypeNumber:
		return strconv.FormatInt(int64(n.Number()), 10)

	default:
		return n.String()
	}
}
