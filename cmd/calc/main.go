package main

// This is an interactive evaluator for integer arithmetic expressions.

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"github.com/ltungv/calc/internal/calc"
)

var cli struct {
	File     string `arg:"" optional:"" type:"path" help:"Evaluate every line of this file instead of standard input."`
	PrintAST bool   `name:"print-ast" help:"Print the syntax tree of each line before its result."`
	DumpTree bool   `name:"dump-tree" help:"Dump the raw parse tree of each line."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("calc"),
		kong.Description("Reads integer arithmetic expressions line by line and prints their values."),
		kong.UsageOnError(),
	)

	reporter := calc.NewSimpleReporter(os.Stderr)
	calculator := calc.NewCalculator(os.Stdout, reporter,
		calc.WithAST(cli.PrintAST),
		calc.WithParseTree(cli.DumpTree),
	)
	if cli.File == "" {
		runPrompt(calculator, reporter)
	} else {
		runFile(cli.File, calculator, reporter)
	}
}

// Run the evaluator in REPL mode. The prompt is only shown to terminals so
// piped output stays one line per input.
func runPrompt(calculator *calc.Calculator, reporter calc.Reporter) {
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	err := calculator.RunAll(os.Stdin, func() {
		reporter.Reset()
		if interactive {
			fmt.Print("> ")
		}
	})
	exitOnError(err, 1)
}

// Evaluate every line of the given file
func runFile(fpath string, calculator *calc.Calculator, reporter calc.Reporter) {
	exitOnError(evalFile(fpath, calculator), 1)
	exitIf(reporter.HadError(), 65)
	exitIf(reporter.HadRuntimeError(), 70)
}

// evalFile runs every line of the file through the calculator. The file is
// closed before evalFile returns.
func evalFile(fpath string, calculator *calc.Calculator) error {
	f, err := os.Open(fpath)
	if err != nil {
		return err
	}
	if err := calculator.RunAll(f, nil); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
