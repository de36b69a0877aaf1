// Package expression turns formula text such as "x^2 - 4" or
// "exp(x/10) - 3" into a callable real function of one variable.
//
// Formulas are trimmed and lower-cased before compilation, so "SIN(X)" and
// "sin(x)" are the same function. The single variable is x; the constants pi
// and e and the functions
//
//	sin cos tan asin acos atan sinh cosh tanh
//	exp log ln log10 log2 sqrt cbrt abs floor ceil pow
//
// are available. log and ln are both the natural logarithm. Powers are written
// with ^ (or **).
//
// A formula is compiled once with github.com/expr-lang/expr and evaluated many
// times; every evaluation works on its own copy of the environment, so a
// *Function may be shared between goroutines.
package expression
