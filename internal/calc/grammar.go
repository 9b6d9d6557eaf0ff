package calc

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// whitespace is every character the lexer skips between tokens.
const whitespace = " \t\n\f\r"

var calcLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Integer", Pattern: `[0-9]+`},
	{Name: "Operator", Pattern: `[-+*/%]`},
	{Name: "Paren", Pattern: `[()]`},
	{Name: "Whitespace", Pattern: "[" + whitespace + "]+"},
})

var grammar = participle.MustBuild[Equation](
	participle.Lexer(calcLexer),
	participle.Elide("Whitespace"),
)

// Equation is the root of the parse tree. The whole line must reduce to a
// single expression.
type Equation struct {
	Pos  lexer.Position
	Expr *Expression `@@`
}

// Expression is a flat run of operands separated by binary operators, in the
// order they appear in the source.
type Expression struct {
	Head *Operand `@@`
	Tail []*Infix `@@*`
}

type Infix struct {
	Pos     lexer.Position
	Op      string   `@("+" | "-" | "*" | "/" | "%")`
	Operand *Operand `@@`
}

type Operand struct {
	Prefix  []*Prefix `@@*`
	Primary *Primary  `@@`
}

type Prefix struct {
	Pos lexer.Position
	Op  string `@"-"`
}

type Primary struct {
	Pos     lexer.Position
	Integer *string     `  @Integer`
	Group   *Expression `| "(" @@ ")"`
}

// Parse checks that line is a well-formed equation and returns its parse
// tree. Any failure is reported as a *SyntaxError.
func Parse(line string) (*Equation, error) {
	if strings.Trim(line, whitespace) == "" {
		return nil, NewSyntaxError(endOf(line), "unexpected end of input, expected expression")
	}
	eq, err := grammar.ParseString("", line)
	if err != nil {
		return nil, newSyntaxErrorFrom(err)
	}
	return eq, nil
}

func newSyntaxErrorFrom(err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return NewSyntaxError(perr.Position(), perr.Message())
	}
	return NewSyntaxError(lexer.Position{Line: 1}, err.Error())
}

func endOf(line string) lexer.Position {
	return lexer.Position{
		Offset: len(line),
		Line:   1,
		Column: utf8.RuneCountInString(line) + 1,
	}
}

// Pair is a single element of the flattened parse tree. Terminal pairs carry
// the lexeme they matched. A pair with RuleExpr holds a parenthesised
// subexpression, whose elements are returned by Inner.
type Pair struct {
	Rule  Rule
	Text  string
	Pos   lexer.Position
	inner []Pair
}

func (p Pair) Inner() []Pair {
	return p.inner
}

func (p Pair) String() string {
	if p.Text == "" {
		return p.Rule.String()
	}
	return fmt.Sprintf("%s %q", p.Rule, p.Text)
}

// Pairs returns a single equation pair wrapping the pairs of the expression.
func (eq *Equation) Pairs() []Pair {
	return []Pair{{Rule: RuleEquation, Pos: eq.Pos, inner: eq.Expr.Pairs()}}
}

// Pairs flattens the expression into prefix, primary and infix pairs in
// source order.
func (e *Expression) Pairs() []Pair {
	pairs := e.Head.appendPairs(nil)
	for _, infix := range e.Tail {
		rule, ok := infixRules[infix.Op]
		if !ok {
			panic(fmt.Sprintf("grammar accepted unknown infix operator %q", infix.Op))
		}
		pairs = append(pairs, Pair{Rule: rule, Text: infix.Op, Pos: infix.Pos})
		pairs = infix.Operand.appendPairs(pairs)
	}
	return pairs
}

func (o *Operand) appendPairs(pairs []Pair) []Pair {
	for _, prefix := range o.Prefix {
		pairs = append(pairs, Pair{Rule: RuleUnaryMinus, Text: prefix.Op, Pos: prefix.Pos})
	}
	return append(pairs, o.Primary.pair())
}

func (p *Primary) pair() Pair {
	if p.Group != nil {
		return Pair{Rule: RuleExpr, Pos: p.Pos, inner: p.Group.Pairs()}
	}
	return Pair{Rule: RuleInteger, Text: *p.Integer, Pos: p.Pos}
}
