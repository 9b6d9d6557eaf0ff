/*
Package calc evaluates arithmetic expressions over 32-bit signed integers, one
line at a time.

Grammars

	equation --> expr EOF ;
	expr     --> operand ( infix operand )* ;
	infix    --> "+" | "-" | "*" | "/" | "%" ;
	operand  --> "-"* primary ;
	primary  --> INTEGER
	           | "(" expr ")" ;

The grammar is deliberately flat. Precedence and associativity are applied
when the parse tree is reduced into an Expr by a precedence climber, with the
following binding powers, lowest first:

	+ -        left-associative
	* / %      left-associative
	- (prefix)

Every line goes through Parse, Build and Evaluate. Any stage can fail, and a
failure only ever affects the line that caused it.
*/
package calc

//go:generate go run ../cmd/ast_codegen .
