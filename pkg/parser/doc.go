/*
Package parser implements the rewrite pipeline that turns one line of user
input into an evaluation, a variable assignment or an answer save.

The pipeline is an ordered list of stages. Each stage either returns the
rewritten line for the next stage or terminates with a Result or an error:

 1. operator continuation: "+3" becomes "ans+3" when a previous answer exists
 2. answer save: "=x" stores the previous answer under x
 3. locale separators: "," becomes "." and then ";" becomes ","
 4. assignment: "x = expr" evaluates expr and stores it under x
 5. substitution: ans and known variables are replaced by their values
 6. evaluation: the line is handed to the Evaluator

Substitution is a single lexical scan over [A-Za-z0-9_]+ words, so a
variable only ever replaces a whole word and inserted values are never
scanned again.

The Session is only mutated by a stage that succeeds.
*/
package parser
