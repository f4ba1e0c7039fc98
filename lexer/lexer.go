package lexer

type lexState func(*Lexer) lexState

var (
	isOpenList  = isTokenType(TokenOpenList)
	isCloseList = isTokenType(TokenCloseList)
)

// New initializes a Lexer object
func New(in string) *Lexer {
	return &Lexer{
		in:     []rune(in),
		tokens: []Token{},
		buf:    []rune{},
	}
}

// Lexer represents a lexical analyzer. It splits a line into parentheses and
// atoms, an atom being any run of characters that are neither whitespace nor
// parentheses.
type Lexer struct {
	in []rune

	tokens []Token

	buf []rune

	start  int
	offset int
}

// Tokens returns the tokens collected so far.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan consumes the whole input.
func (lx *Lexer) Scan() []Token {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.tokens
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, Token{
		tt:     tt,
		lexeme: string(lx.buf),

		col: lx.start + 1,
	})

	lx.start = lx.offset
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) ignore() {
	lx.start = lx.offset
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() (rune, bool) {
	if lx.offset >= len(lx.in) {
		return rune(0), false
	}
	return lx.in[lx.offset], true
}

func (lx *Lexer) next() (rune, bool) {
	r, ok := lx.peek()
	if !ok {
		return r, false
	}
	lx.offset++
	lx.buf = append(lx.buf, r)
	return r, true
}

func lexDefaultState(lx *Lexer) lexState {
	r, ok := lx.next()
	if !ok {
		return nil
	}

	switch {
	case isOpenList(r):
		return lexEmit(TokenOpenList)
	case isCloseList(r):
		return lexEmit(TokenCloseList)
	case isWhitespace(r):
		return lexSkipWhitespace
	}

	return lexAtom
}

func lexSkipWhitespace(lx *Lexer) lexState {
	for {
		p, ok := lx.peek()
		if !ok || !isWhitespace(p) {
			break
		}
		lx.next()
	}
	lx.ignore()
	return lexDefaultState
}

func lexAtom(lx *Lexer) lexState {
	for {
		p, ok := lx.peek()
		if !ok || isWhitespace(p) || isOpenList(p) || isCloseList(p) {
			break
		}
		lx.next()
	}
	return lexEmit(TokenAtom)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

// Tokenize takes a line of text and returns all the tokens within it. Empty
// or blank input yields an empty slice.
func Tokenize(in string) []Token {
	return New(in).Scan()
}
