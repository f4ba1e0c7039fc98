package ast

import (
	"bytes"
	"testing"

	"github.com/CAIMEOX/CommandLisp/lexer"
	"github.com/stretchr/testify/assert"
)

func TestNode(t *testing.T) {
	token := lexer.NewToken(lexer.TokenAtom, "foo", 1)

	node := NewSymbol(&token, "foo")
	assert.True(t, node.IsAtom())
	assert.False(t, node.IsList())
	assert.Equal(t, &token, node.Token())

	err := node.Push(NewNumber(nil, 1))
	assert.Error(t, err)
}

func TestNodeList(t *testing.T) {
	token := lexer.NewToken(lexer.TokenOpenList, "(", 1)

	list := NewList(&token)
	assert.True(t, list.IsList())
	assert.Empty(t, list.List())

	err := list.Push(NewNumber(nil, 7))
	assert.NoError(t, err)
	assert.Len(t, list.List(), 1)
	assert.Equal(t, int32(7), list.List()[0].Number())
}

func TestNodeString(t *testing.T) {
	testCases := []struct {
		In  *Node
		Out string
	}{
		{NewSymbol(nil, "abc"), "abc"},
		{NewNumber(nil, -42), "-42"},
		{NewList(nil), "()"},
		{NewList(nil, NewNumber(nil, 1), NewNumber(nil, 2), NewNumber(nil, 3)), "(1,2,3)"},
		{NewList(nil, NewSymbol(nil, "+"), NewList(nil, NewNumber(nil, 1)), NewSymbol(nil, "x")), "(+,(1),x)"},
		{NewCommand(CommandFunc(nil)), "Function {}"},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, testCases[i].In.String())
	}
}

func TestEncode(t *testing.T) {
	node := NewList(nil,
		NewSymbol(nil, "-"),
		NewNumber(nil, 10),
		NewList(nil, NewSymbol(nil, "+"), NewNumber(nil, 1), NewNumber(nil, 2)),
		NewList(nil),
	)
	assert.Equal(t, "(- 10 (+ 1 2) ())", Encode(node))
	assert.Equal(t, "", Encode(nil))
}

func TestEqual(t *testing.T) {
	cmd := NewCommand(CommandFunc(func(args []*Node) (*Node, error) {
		return NewNumber(nil, 0), nil
	}))

	a := NewList(nil, NewSymbol(nil, "a"), NewNumber(nil, 1), NewList(nil))
	b := NewList(nil, NewSymbol(nil, "a"), NewNumber(nil, 1), NewList(nil))
	c := NewList(nil, NewSymbol(nil, "a"), NewNumber(nil, 2), NewList(nil))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(NewList(nil, NewSymbol(nil, "a"))))
	assert.False(t, NewSymbol(nil, "1").Equal(NewNumber(nil, 1)))
	assert.True(t, cmd.Equal(cmd))
	assert.False(t, cmd.Equal(NewCommand(cmd.Command())))

	var nilNode *Node
	assert.True(t, nilNode.Equal(nil))
	assert.False(t, a.Equal(nil))
}

func TestCommandFunc(t *testing.T) {
	var got []*Node
	cmd := CommandFunc(func(args []*Node) (*Node, error) {
		got = args
		return NewNumber(nil, int32(len(args))), nil
	})

	res, err := cmd.Invoke([]*Node{NewNumber(nil, 1), NewNumber(nil, 2)})
	assert.NoError(t, err)
	assert.Equal(t, int32(2), res.Number())
	assert.Len(t, got, 2)
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, NewList(nil, NewSymbol(nil, "+"), NewNumber(nil, 1)))
	assert.Equal(t, "(list): [2]\n    (symbol): +\n    (number): 1\n", buf.String())
}
