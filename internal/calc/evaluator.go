package calc

import (
	"fmt"
	"math"
)

// Evaluator walks a syntax tree and reduces it to a single integer. This
// struct implements ExprVisitor.
type Evaluator struct{}

// Evaluate returns the value of expr, or the first error raised while
// evaluating it. Partial results are discarded on error.
func Evaluate(expr Expr) (int32, error) {
	return new(Evaluator).Evaluate(expr)
}

func (in *Evaluator) Evaluate(expr Expr) (int32, error) {
	return in.eval(expr)
}

func (in *Evaluator) VisitIntegerExpr(expr *IntegerExpr) (interface{}, error) {
	return expr.Value, nil
}

func (in *Evaluator) VisitUnaryMinusExpr(expr *UnaryMinusExpr) (interface{}, error) {
	operand, err := in.eval(expr.Operand)
	if err != nil {
		return nil, err
	}
	if operand == math.MinInt32 {
		return nil, NewRuntimeError("-", fmt.Sprintf("-(%d)", operand), ErrArithmeticOverflow)
	}
	return -operand, nil
}

func (in *Evaluator) VisitBinOpExpr(expr *BinOpExpr) (interface{}, error) {
	lhs, err := in.eval(expr.Left)
	if err != nil {
		return nil, err
	}
	rhs, err := in.eval(expr.Right)
	if err != nil {
		return nil, err
	}

	left, right := int64(lhs), int64(rhs)
	var result int64
	switch expr.Op {
	case OpAdd:
		result = left + right
	case OpSubtract:
		result = left - right
	case OpMultiply:
		result = left * right
	case OpDivide:
		if right == 0 {
			return nil, newBinOpError(expr.Op, lhs, rhs, ErrDivisionByZero)
		}
		// Go's integer division already truncates toward zero.
		result = left / right
	case OpModulo:
		if right == 0 {
			return nil, newBinOpError(expr.Op, lhs, rhs, ErrDivisionByZero)
		}
		result = left % right
	default:
		panic(fmt.Sprintf("unknown operator %v", expr.Op))
	}

	if result < math.MinInt32 || result > math.MaxInt32 {
		return nil, newBinOpError(expr.Op, lhs, rhs, ErrArithmeticOverflow)
	}
	return int32(result), nil
}

func (in *Evaluator) eval(expr Expr) (int32, error) {
	v, err := expr.Accept(in)
	if err != nil {
		return 0, err
	}
	return v.(int32), nil
}

func newBinOpError(op Op, lhs, rhs int32, err error) error {
	return NewRuntimeError(op.String(), fmt.Sprintf("%d %s %d", lhs, op, rhs), err)
}
