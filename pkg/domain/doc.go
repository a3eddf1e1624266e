/*
Package domain contains the core state and error types of the calculator.

It is kept free of I/O so the parser, the command handler and the REPL
driver can share it without depending on each other.

# Key Entities

  - Session: previous answer plus user variables for one REPL session.
  - DisplayFormat: notation and decimal count used to render results.
  - Errors: sentinel errors grouped by class (missing context, validation,
    evaluation, unknown command).
*/
package domain
