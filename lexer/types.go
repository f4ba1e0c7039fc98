package lexer

import (
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid   TokenType = iota
	TokenOpenList            // Open parenthesis: "("
	TokenCloseList           // Close parenthesis: ")"
	TokenAtom                // Any other run of non-whitespace characters
)

var tokenValues = map[TokenType][]rune{
	TokenOpenList:  []rune{'('},
	TokenCloseList: []rune{')'},
}

var tokenNames = map[TokenType]string{
	TokenInvalid:   "invalid",
	TokenOpenList:  "open_list",
	TokenCloseList: "close_list",
	TokenAtom:      "atom",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}
