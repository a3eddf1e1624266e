/*
Package runner drives the calculator's read-eval-print loop.

A Runner reads one line at a time from a LineReader, routes lines that
start with ':' to the command handler and everything else to the parser,
and prints the formatted result or the error. Every error is reported and
the loop continues; only :q, Ctrl-C, Ctrl-D or a cancelled context end it.

Two LineReader implementations are provided:

  - Terminal: raw-mode line editing with history on an interactive terminal (golang.org/x/term).
  - TextHandler: plain buffered reading for pipes and files.
*/
package runner
