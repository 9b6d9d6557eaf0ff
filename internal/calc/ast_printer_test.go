package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAstPrinter(t *testing.T) {
	testCases := []struct {
		expr Expr
		want string
	}{
		{NewIntegerExpr(-4), "-4"},
		{NewUnaryMinusExpr(NewIntegerExpr(2)), "(- 2)"},
		{
			NewBinOpExpr(
				NewIntegerExpr(1),
				OpAdd,
				NewUnaryMinusExpr(NewIntegerExpr(2))),
			"(+ 1 (- 2))",
		},
		{
			NewBinOpExpr(
				NewBinOpExpr(NewIntegerExpr(8), OpModulo, NewIntegerExpr(3)),
				OpDivide,
				NewIntegerExpr(2)),
			"(/ (% 8 3) 2)",
		},
	}

	assert := assert.New(t)
	printer := AstPrinter{}
	for _, tc := range testCases {
		assert.Equal(tc.want, printer.Print(tc.expr))
	}
}

func TestInfixPrinter(t *testing.T) {
	one, two, three := NewIntegerExpr(1), NewIntegerExpr(2), NewIntegerExpr(3)
	testCases := []struct {
		expr Expr
		want string
	}{
		{one, "1"},
		{NewUnaryMinusExpr(NewUnaryMinusExpr(one)), "--1"},
		{NewBinOpExpr(NewBinOpExpr(one, OpSubtract, two), OpSubtract, three), "1 - 2 - 3"},
		{NewBinOpExpr(one, OpSubtract, NewBinOpExpr(two, OpSubtract, three)), "1 - (2 - 3)"},
		{NewBinOpExpr(one, OpAdd, NewBinOpExpr(two, OpMultiply, three)), "1 + 2 * 3"},
		{NewBinOpExpr(NewBinOpExpr(one, OpAdd, two), OpMultiply, three), "(1 + 2) * 3"},
		{NewBinOpExpr(one, OpDivide, NewBinOpExpr(two, OpModulo, three)), "1 / (2 % 3)"},
		{NewUnaryMinusExpr(NewBinOpExpr(one, OpAdd, two)), "-(1 + 2)"},
		{NewBinOpExpr(NewUnaryMinusExpr(one), OpMultiply, NewUnaryMinusExpr(two)), "-1 * -2"},
	}

	assert := assert.New(t)
	printer := InfixPrinter{}
	for _, tc := range testCases {
		assert.Equal(tc.want, printer.Print(tc.expr))
	}
}
