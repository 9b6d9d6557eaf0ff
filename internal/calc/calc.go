package calc

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/alecthomas/repr"
)

// Eval parses, builds and evaluates a single line. It keeps no state between
// calls.
func Eval(line string) (int32, error) {
	eq, err := Parse(line)
	if err != nil {
		return 0, err
	}
	expr, err := Build(eq)
	if err != nil {
		return 0, err
	}
	return Evaluate(expr)
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithAST makes the calculator print the s-expression of every line it
// builds before printing its result.
func WithAST(enabled bool) Option {
	return func(c *Calculator) {
		c.printAST = enabled
	}
}

// WithParseTree makes the calculator dump the raw parse tree of every line
// it parses.
func WithParseTree(enabled bool) Option {
	return func(c *Calculator) {
		c.dumpTree = enabled
	}
}

// Calculator evaluates lines one by one, writing results to its output and
// handing every failure to its reporter.
type Calculator struct {
	output   io.Writer
	reporter Reporter
	printAST bool
	dumpTree bool
}

func NewCalculator(output io.Writer, reporter Reporter, opts ...Option) *Calculator {
	c := &Calculator{output: output, reporter: reporter}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run evaluates one line and reports whether it succeeded.
func (c *Calculator) Run(line string) bool {
	eq, err := Parse(line)
	if err != nil {
		c.reporter.Report(err)
		return false
	}
	if c.dumpTree {
		fmt.Fprintf(c.output, "Tree: %s\n", repr.String(eq, repr.Indent("  ")))
	}

	expr, err := Build(eq)
	if err != nil {
		c.reporter.Report(err)
		return false
	}
	if c.printAST {
		fmt.Fprintf(c.output, "AST: %s\n", new(AstPrinter).Print(expr))
	}

	result, err := Evaluate(expr)
	if err != nil {
		c.reporter.Report(err)
		return false
	}
	fmt.Fprintf(c.output, "Result: %d\n", result)
	return true
}

// RunAll evaluates every line read from r until the end of the stream. The
// prompt, if not nil, is called before each line is read. Only errors from
// reading r are returned; bad lines are reported and skipped.
func (c *Calculator) RunAll(r io.Reader, prompt func()) error {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanLines)
	// Lines have no length limit; a long line is still just one line.
	s.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for {
		if prompt != nil {
			prompt()
		}
		if !s.Scan() {
			break
		}
		c.Run(s.Text())
	}
	return s.Err()
}
