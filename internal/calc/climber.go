package calc

import "fmt"

// Assoc is the associativity of an infix operator.
type Assoc int

const (
	AssocLeft Assoc = iota
	AssocRight
)

type binding struct {
	power uint
	assoc Assoc
}

// Climber holds the binding powers of the infix and prefix rules. Each call
// to Infix or Prefix opens a new tier that binds tighter than every tier
// before it. A Climber is not modified after it has been built.
type Climber struct {
	tiers  uint
	infix  map[Rule]binding
	prefix map[Rule]uint
}

func NewClimber() *Climber {
	return &Climber{
		infix:  make(map[Rule]binding),
		prefix: make(map[Rule]uint),
	}
}

// Infix adds a tier of infix rules sharing the same associativity.
func (c *Climber) Infix(assoc Assoc, rules ...Rule) *Climber {
	c.tiers++
	for _, rule := range rules {
		c.infix[rule] = binding{c.tiers, assoc}
	}
	return c
}

// Prefix adds a tier of prefix rules.
func (c *Climber) Prefix(rules ...Rule) *Climber {
	c.tiers++
	for _, rule := range rules {
		c.prefix[rule] = c.tiers
	}
	return c
}

// Reducers turns the pairs seen by the climber into values of type T.
type Reducers[T any] struct {
	Primary func(primary Pair) (T, error)
	Infix   func(lhs T, op Pair, rhs T) (T, error)
	Prefix  func(op Pair, rhs T) (T, error)
}

// Climb reduces a flat sequence of pairs into a single value, grouping
// operands by the binding powers in c.
func Climb[T any](c *Climber, pairs []Pair, r Reducers[T]) (T, error) {
	s := &pairStream{pairs: pairs}
	res, err := climb(c, s, 0, r)
	if err != nil {
		return res, err
	}
	if p, ok := s.peek(); ok {
		panic(fmt.Sprintf("climber left pair %v unreduced", p))
	}
	return res, nil
}

func climb[T any](c *Climber, s *pairStream, minPower uint, r Reducers[T]) (T, error) {
	lhs, err := climbOperand(c, s, r)
	if err != nil {
		return lhs, err
	}
	for {
		op, ok := s.peek()
		if !ok {
			return lhs, nil
		}
		b, isInfix := c.infix[op.Rule]
		if !isInfix {
			panic(fmt.Sprintf("expected infix operation, found %v", op))
		}
		if b.power < minPower {
			return lhs, nil
		}
		s.next()

		next := b.power + 1
		if b.assoc == AssocRight {
			next = b.power
		}
		rhs, err := climb(c, s, next, r)
		if err != nil {
			return rhs, err
		}
		if lhs, err = r.Infix(lhs, op, rhs); err != nil {
			return lhs, err
		}
	}
}

func climbOperand[T any](c *Climber, s *pairStream, r Reducers[T]) (T, error) {
	p, ok := s.next()
	if !ok {
		panic("expected operand, found end of pairs")
	}
	if power, isPrefix := c.prefix[p.Rule]; isPrefix {
		rhs, err := climb(c, s, power, r)
		if err != nil {
			return rhs, err
		}
		return r.Prefix(p, rhs)
	}
	if _, isInfix := c.infix[p.Rule]; isInfix {
		panic(fmt.Sprintf("expected operand, found infix operation %v", p))
	}
	return r.Primary(p)
}

type pairStream struct {
	pairs   []Pair
	current int
}

func (s *pairStream) peek() (Pair, bool) {
	if s.current >= len(s.pairs) {
		return Pair{}, false
	}
	return s.pairs[s.current], true
}

func (s *pairStream) next() (Pair, bool) {
	p, ok := s.peek()
	if ok {
		s.current++
	}
	return p, ok
}
