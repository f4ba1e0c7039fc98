package commandlisp

import (
	"fmt"
	"math"

	"github.com/CAIMEOX/CommandLisp/ast"
)

var builtins = map[string]ast.Command{
	"+": ast.CommandFunc(builtinAdd),
	"-": ast.CommandFunc(builtinSub),
}

// builtinAdd returns the sum of its arguments, 0 when there are none.
func builtinAdd(args []*ast.Node) (*ast.Node, error) {
	nums, err := numbers(args)
	if err != nil {
		return nil, err
	}
	total, err := sum(nums)
	if err != nil {
		return nil, err
	}
	return ast.NewNumber(nil, total), nil
}

// builtinSub subtracts the sum of the remaining arguments from the first one.
func builtinSub(args []*ast.Node) (*ast.Node, error) {
	nums, err := numbers(args)
	if err != nil {
		return nil, err
	}
	if len(nums) < 1 {
		return nil, ErrArity
	}
	rest, err := sum(nums[1:])
	if err != nil {
		return nil, err
	}
	diff, err := checked(int64(nums[0]) - int64(rest))
	if err != nil {
		return nil, err
	}
	return ast.NewNumber(nil, diff), nil
}

func numbers(args []*ast.Node) ([]int32, error) {
	nums := make([]int32, 0, len(args))
	for i, arg := range args {
		if !arg.Is(ast.NodeTypeNumber) {
			return nil, fmt.Errorf("%w: argument %d is %v", ErrType, i+1, arg)
		}
		nums = append(nums, arg.Number())
	}
	return nums, nil
}

func sum(nums []int32) (int32, error) {
	var total int32
	for _, n := range nums {
		var err error
		if total, err = checked(int64(total) + int64(n)); err != nil {
			return 0, err
		}
	}
	return total, nil
}

func checked(v int64) (int32, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%w: %d does not fit in 32 bits", ErrArithmeticOverflow, v)
	}
	return int32(v), nil
}
