package main

import (
	"fmt"

	"github.com/CAIMEOX/CommandLisp/lexer"
)

func main() {
	input := `(+ 1 (- 20 4 -3) (+ x y))`

	tokens := lexer.Tokenize(input)

	for i, tok := range tokens {
		fmt.Printf("token[%d] (type: %v, col: %d)\n\t-> %q\n\n", i, tok.Type(), tok.Col(), tok.Text())
	}
}
