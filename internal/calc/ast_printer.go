package calc

import (
	"fmt"
	"strconv"
)

// AstPrinter renders a syntax tree as an s-expression, e.g. "(+ 1 (- 2))".
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) VisitIntegerExpr(expr *IntegerExpr) (interface{}, error) {
	return strconv.FormatInt(int64(expr.Value), 10), nil
}

func (printer *AstPrinter) VisitUnaryMinusExpr(expr *UnaryMinusExpr) (interface{}, error) {
	operand, _ := expr.Operand.Accept(printer)
	return fmt.Sprintf("(- %s)", operand), nil
}

func (printer *AstPrinter) VisitBinOpExpr(expr *BinOpExpr) (interface{}, error) {
	left, _ := expr.Left.Accept(printer)
	right, _ := expr.Right.Accept(printer)
	return fmt.Sprintf("(%s %s %s)", expr.Op, left, right), nil
}

// InfixPrinter renders a syntax tree back into source text, adding only the
// parentheses needed to keep its shape. Parsing the output yields the same
// tree, provided no literal is negative.
type InfixPrinter struct{}

func (printer *InfixPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *InfixPrinter) VisitIntegerExpr(expr *IntegerExpr) (interface{}, error) {
	return strconv.FormatInt(int64(expr.Value), 10), nil
}

func (printer *InfixPrinter) VisitUnaryMinusExpr(expr *UnaryMinusExpr) (interface{}, error) {
	operand := printer.Print(expr.Operand)
	if _, isBinOp := expr.Operand.(*BinOpExpr); isBinOp {
		operand = "(" + operand + ")"
	}
	return "-" + operand, nil
}

func (printer *InfixPrinter) VisitBinOpExpr(expr *BinOpExpr) (interface{}, error) {
	power := bindingPower(expr)
	left := printer.Print(expr.Left)
	if bindingPower(expr.Left) < power {
		left = "(" + left + ")"
	}
	// Operators are left-associative, so an equal power on the right has to
	// be grouped explicitly.
	right := printer.Print(expr.Right)
	if bindingPower(expr.Right) <= power {
		right = "(" + right + ")"
	}
	return fmt.Sprintf("%s %s %s", left, expr.Op, right), nil
}

// bindingPower reports how tightly expr holds together in infix text.
// Integers and negations never need grouping.
func bindingPower(expr Expr) uint {
	if binOp, ok := expr.(*BinOpExpr); ok {
		return precedence.infix[binOp.Op.Rule()].power
	}
	return precedence.tiers + 1
}
