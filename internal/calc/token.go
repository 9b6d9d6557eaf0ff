package calc

import "fmt"

// Rule identifies the grammar production that a parse tree pair was matched
// by. Rules only live for the duration of a single parse.
type Rule uint

const (
	RuleEquation Rule = iota
	RuleExpr
	RuleInteger

	// Infix operators
	RuleAdd
	RuleSubtract
	RuleMultiply
	RuleDivide
	RuleModulo

	// Prefix operators
	RuleUnaryMinus
)

func (r Rule) String() string {
	switch r {
	case RuleEquation:
		return "equation"
	case RuleExpr:
		return "expr"
	case RuleInteger:
		return "integer"
	case RuleAdd:
		return "add"
	case RuleSubtract:
		return "subtract"
	case RuleMultiply:
		return "multiply"
	case RuleDivide:
		return "divide"
	case RuleModulo:
		return "modulo"
	case RuleUnaryMinus:
		return "unary_minus"
	}
	return fmt.Sprintf("Rule(%d)", uint(r))
}

// infixRules maps the lexeme of a binary operator to its rule.
var infixRules = map[string]Rule{
	"+": RuleAdd,
	"-": RuleSubtract,
	"*": RuleMultiply,
	"/": RuleDivide,
	"%": RuleModulo,
}

// Op is the operator carried by a binary expression.
type Op uint

const (
	OpAdd Op = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpModulo:
		return "%"
	}
	return fmt.Sprintf("Op(%d)", uint(op))
}

// Rule returns the grammar production that produces op.
func (op Op) Rule() Rule {
	switch op {
	case OpAdd:
		return RuleAdd
	case OpSubtract:
		return RuleSubtract
	case OpMultiply:
		return RuleMultiply
	case OpDivide:
		return RuleDivide
	case OpModulo:
		return RuleModulo
	}
	panic(fmt.Sprintf("no rule for operator %v", op))
}
