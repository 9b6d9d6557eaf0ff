package calc

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

var (
	// ErrLiteralOverflow is wrapped by errors for integer literals that do not
	// fit in 32 bits.
	ErrLiteralOverflow = errors.New("integer literal out of range")
	// ErrArithmeticOverflow is wrapped by errors for operations whose result
	// does not fit in 32 bits.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
	// ErrDivisionByZero is wrapped by errors for divisions and remainders with
	// a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
)

// SyntaxError is returned when a line does not match the grammar.
type SyntaxError struct {
	Pos     lexer.Position
	Message string
}

// NewSyntaxError creates a new syntax error
func NewSyntaxError(pos lexer.Position, message string) error {
	return &SyntaxError{pos, message}
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf(
		"[column %d] Error: %s",
		err.Pos.Column,
		err.Message,
	)
}

// LiteralError wraps a failure to convert an integer literal, with the
// literal and where it was found.
type LiteralError struct {
	Pos     lexer.Position
	Literal string
	Err     error
}

func NewLiteralError(pos lexer.Position, literal string, err error) error {
	return &LiteralError{pos, literal, err}
}

func (err *LiteralError) Error() string {
	return fmt.Sprintf(
		"[column %d] Error at '%s': %v",
		err.Pos.Column,
		err.Literal,
		err.Err,
	)
}

func (err *LiteralError) Unwrap() error {
	return err.Err
}

// RuntimeError is raised while evaluating an expression. It carries the
// operator that failed and the operands it was applied to.
type RuntimeError struct {
	Op     string
	Detail string
	Err    error
}

func NewRuntimeError(op string, detail string, err error) error {
	return &RuntimeError{op, detail, err}
}

func (err *RuntimeError) Error() string {
	return fmt.Sprintf(
		"Error at '%s': %v in %s",
		err.Op,
		err.Err,
		err.Detail,
	)
}

func (err *RuntimeError) Unwrap() error {
	return err.Err
}
