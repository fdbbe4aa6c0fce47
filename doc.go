// Package supercalc implements a calculator for integers, reals, exact
// fractions and vectors, with user-defined variables and functions.
//
// Expressions are written the way you'd write them in your notes: "2 + 3 * 4"
// is 14, "1/3 + 1/6" is the fraction 1/2, and "<1, 2, 3> . <4, 5, 6>" is the
// dot product 32. Statements like "f(x) = x * x" define functions, and every
// other successful statement stores its result in the variable ans.
//
// Parsing produces a tree of *Value, and evaluation produces another *Value.
// Errors are values too: a failed parse or evaluation yields a Value whose
// Err method returns the *Error describing what went wrong.
//
// Function bodies are evaluated with dynamic scope. Names that are not
// parameters resolve against whatever is visible where the function is
// called, not where it was defined.
package supercalc
