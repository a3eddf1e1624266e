/*
Package calcli is a calculator for the command line.

It reads one line at a time, rewrites it (previous answer, variables,
locale separators, continuation of the previous result) and evaluates the
result as an arithmetic expression. Lines starting with ':' are commands
that control how results are displayed.

# Usage

Start the REPL:

	$ calcli
	>>> 1,5 * 2
	= 3.000
	>>> +1
	= 4.000
	>>> r = 2
	r = 2.000
	>>> pi * r^2
	= 12.566
	>>> :s2
	Set to scientific notation with 2 decimal places
	>>> ans * 1000
	= 1.26e+04

Or evaluate without the REPL:

	$ calcli eval "r = 2" "pi * r^2"

# Packages

  - pkg/parser: the rewrite pipeline and its session state.
  - pkg/commands: ':' commands and display formatting.
  - pkg/evaluator: the arithmetic evaluator.
  - pkg/runner: the read-eval-print loop.
*/
package calcli
