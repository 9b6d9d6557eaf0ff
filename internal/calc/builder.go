package calc

import (
	"errors"
	"fmt"
	"strconv"
)

// precedence is shared by every build, lowest binding power first.
var precedence = NewClimber().
	Infix(AssocLeft, RuleAdd, RuleSubtract).
	Infix(AssocLeft, RuleMultiply, RuleDivide, RuleModulo).
	Prefix(RuleUnaryMinus)

var builder Reducers[Expr]

func init() {
	builder = Reducers[Expr]{
		Primary: buildPrimary,
		Infix:   buildInfix,
		Prefix:  buildPrefix,
	}
}

// Build converts the parse tree of an equation into an Expr.
func Build(eq *Equation) (Expr, error) {
	return BuildPairs(eq.Pairs()[0].Inner())
}

// BuildPairs converts the flattened pairs of an expression into an Expr.
func BuildPairs(pairs []Pair) (Expr, error) {
	return Climb(precedence, pairs, builder)
}

func buildPrimary(primary Pair) (Expr, error) {
	switch primary.Rule {
	case RuleInteger:
		value, err := strconv.ParseInt(primary.Text, 10, 32)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				err = ErrLiteralOverflow
			}
			return nil, NewLiteralError(primary.Pos, primary.Text, err)
		}
		return NewIntegerExpr(int32(value)), nil
	case RuleExpr:
		return BuildPairs(primary.Inner())
	}
	panic(fmt.Sprintf("expected atom, found %v", primary.Rule))
}

func buildInfix(lhs Expr, op Pair, rhs Expr) (Expr, error) {
	var binOp Op
	switch op.Rule {
	case RuleAdd:
		binOp = OpAdd
	case RuleSubtract:
		binOp = OpSubtract
	case RuleMultiply:
		binOp = OpMultiply
	case RuleDivide:
		binOp = OpDivide
	case RuleModulo:
		binOp = OpModulo
	default:
		panic(fmt.Sprintf("expected infix operation, found %v", op.Rule))
	}
	return NewBinOpExpr(lhs, binOp, rhs), nil
}

func buildPrefix(op Pair, rhs Expr) (Expr, error) {
	if op.Rule != RuleUnaryMinus {
		panic(fmt.Sprintf("expected prefix operation, found %v", op.Rule))
	}
	return NewUnaryMinusExpr(rhs), nil
}
