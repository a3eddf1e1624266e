package tui

// HelpText is the markdown shown for the :h command.
const HelpText = `# calcli

Type an arithmetic expression and press Enter.

## Expressions

| Input | Meaning |
|---|---|
| ` + "`1 + 2 * 3`" + ` | operators ` + "`+ - * / ^`" + ` and parentheses |
| ` + "`sqrt(2)`, `max(1;2)`" + ` | functions; separate arguments with ` + "`;`" + ` |
| ` + "`1,5`" + ` | a comma is a decimal point |
| ` + "`ans`" + ` | the previous answer |
| ` + "`+3`" + ` | a leading operator continues from the previous answer |
| ` + "`x = 2 * pi`" + ` | assign a variable |
| ` + "`=x`" + ` | save the previous answer as ` + "`x`" + ` |

Functions: sqrt, cbrt, exp, ln, log, log2, log10, sin, cos, tan, asin,
acos, atan, atan2, sinh, cosh, tanh, abs, floor, ceil, round, trunc,
signum, hypot, pow, mod, min, max. Constants: pi, e.

## Commands

| Command | Effect |
|---|---|
| ` + "`:d`, `:d<N>`" + ` | normal notation with N decimals (default 3) |
| ` + "`:s`, `:s<N>`" + ` | scientific notation with N decimals (default 3) |
| ` + "`:h`" + ` | this help |
| ` + "`:q`" + ` | quit (also Ctrl-C or Ctrl-D) |
`
