package calc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pair(rule Rule, text string) Pair {
	return Pair{Rule: rule, Text: text}
}

func num(text string) Pair {
	return pair(RuleInteger, text)
}

var sexprReducers = Reducers[string]{
	Primary: func(primary Pair) (string, error) {
		if primary.Text == "bad" {
			return "", errors.New("bad primary")
		}
		return primary.Text, nil
	},
	Infix: func(lhs string, op Pair, rhs string) (string, error) {
		return fmt.Sprintf("(%s %s %s)", op.Text, lhs, rhs), nil
	},
	Prefix: func(op Pair, rhs string) (string, error) {
		return fmt.Sprintf("(%s %s)", op.Text, rhs), nil
	},
}

func TestClimbPrecedence(t *testing.T) {
	add := pair(RuleAdd, "+")
	sub := pair(RuleSubtract, "-")
	mul := pair(RuleMultiply, "*")
	div := pair(RuleDivide, "/")
	mod := pair(RuleModulo, "%")
	neg := pair(RuleUnaryMinus, "-")

	testCases := []struct {
		pairs []Pair
		want  string
	}{
		{[]Pair{num("1")}, "1"},
		{[]Pair{num("1"), sub, num("2"), sub, num("3")}, "(- (- 1 2) 3)"},
		{[]Pair{num("2"), add, num("3"), mul, num("4")}, "(+ 2 (* 3 4))"},
		{[]Pair{num("2"), mul, num("3"), add, num("4")}, "(+ (* 2 3) 4)"},
		{[]Pair{num("8"), div, num("4"), mod, num("3")}, "(% (/ 8 4) 3)"},
		{[]Pair{neg, num("2"), mul, num("3")}, "(* (- 2) 3)"},
		{[]Pair{neg, neg, num("2")}, "(- (- 2))"},
		{[]Pair{num("1"), sub, neg, num("2"), mul, num("3")}, "(- 1 (* (- 2) 3))"},
		{[]Pair{num("1"), add, num("2"), mul, num("3"), sub, num("4")}, "(- (+ 1 (* 2 3)) 4)"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		got, err := Climb(precedence, tc.pairs, sexprReducers)
		assert.NoError(err)
		assert.Equal(tc.want, got)
	}
}

func TestClimbRightAssociative(t *testing.T) {
	climber := NewClimber().
		Infix(AssocLeft, RuleAdd).
		Infix(AssocRight, RuleMultiply).
		Prefix(RuleUnaryMinus)

	mul := pair(RuleMultiply, "*")
	add := pair(RuleAdd, "+")
	got, err := Climb(climber, []Pair{num("1"), mul, num("2"), mul, num("3"), add, num("4")}, sexprReducers)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("(+ (* 1 (* 2 3)) 4)", got)
}

func TestClimbStopsOnReducerError(t *testing.T) {
	add := pair(RuleAdd, "+")
	_, err := Climb(precedence, []Pair{num("1"), add, num("bad"), add, num("2")}, sexprReducers)
	assert.EqualError(t, err, "bad primary")
}

func TestClimbPanicsOnMisplacedPairs(t *testing.T) {
	testCases := [][]Pair{
		{},
		{pair(RuleAdd, "+")},
		{num("1"), num("2")},
		{num("1"), pair(RuleAdd, "+")},
		{num("1"), pair(RuleUnaryMinus, "-"), num("2")},
	}

	assert := assert.New(t)
	for _, pairs := range testCases {
		assert.Panics(func() {
			_, _ = Climb(precedence, pairs, sexprReducers)
		}, "%v", pairs)
	}
}
