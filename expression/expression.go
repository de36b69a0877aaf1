// SPDX-License-Identifier: MIT

package expression

import (
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/katalvlaran/vcm/bisection"
)

// env is the evaluation environment seen by a formula.
type env struct {
	X  float64 `expr:"x"`
	Pi float64 `expr:"pi"`
	E  float64 `expr:"e"`

	Sin   func(float64) float64          `expr:"sin"`
	Cos   func(float64) float64          `expr:"cos"`
	Tan   func(float64) float64          `expr:"tan"`
	Asin  func(float64) float64          `expr:"asin"`
	Acos  func(float64) float64          `expr:"acos"`
	Atan  func(float64) float64          `expr:"atan"`
	Sinh  func(float64) float64          `expr:"sinh"`
	Cosh  func(float64) float64          `expr:"cosh"`
	Tanh  func(float64) float64          `expr:"tanh"`
	Exp   func(float64) float64          `expr:"exp"`
	Log   func(float64) float64          `expr:"log"`
	Ln    func(float64) float64          `expr:"ln"`
	Log10 func(float64) float64          `expr:"log10"`
	Log2  func(float64) float64          `expr:"log2"`
	Sqrt  func(float64) float64          `expr:"sqrt"`
	Cbrt  func(float64) float64          `expr:"cbrt"`
	Abs   func(float64) float64          `expr:"abs"`
	Floor func(float64) float64          `expr:"floor"`
	Ceil  func(float64) float64          `expr:"ceil"`
	Pow   func(float64, float64) float64 `expr:"pow"`
}

// baseEnv is copied for every evaluation; only X changes.
var baseEnv = env{
	Pi:    math.Pi,
	E:     math.E,
	Sin:   math.Sin,
	Cos:   math.Cos,
	Tan:   math.Tan,
	Asin:  math.Asin,
	Acos:  math.Acos,
	Atan:  math.Atan,
	Sinh:  math.Sinh,
	Cosh:  math.Cosh,
	Tanh:  math.Tanh,
	Exp:   math.Exp,
	Log:   math.Log,
	Ln:    math.Log,
	Log10: math.Log10,
	Log2:  math.Log2,
	Sqrt:  math.Sqrt,
	Cbrt:  math.Cbrt,
	Abs:   math.Abs,
	Floor: math.Floor,
	Ceil:  math.Ceil,
	Pow:   math.Pow,
}

// shadowed builtins are replaced by the float64 versions in env.
var shadowed = []string{"abs", "floor", "ceil"}

// Function is a compiled formula in the variable x.
type Function struct {
	formula string
	program *vm.Program
}

// Normalize trims surrounding blanks and lower-cases the formula.
func Normalize(formula string) string {
	return strings.ToLower(strings.TrimSpace(formula))
}

// Compile parses formula into a Function.
//
// Errors:
//   - ErrEmptyFormula when the normalized formula is empty.
//   - *CompileError (errors.Is ErrCompile) carrying the compiler diagnostic.
func Compile(formula string) (*Function, error) {
	src := Normalize(formula)
	if src == "" {
		return nil, ErrEmptyFormula
	}

	opts := []expr.Option{expr.Env(env{}), expr.AsFloat64()}
	for _, name := range shadowed {
		opts = append(opts, expr.DisableBuiltin(name))
	}
	program, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, &CompileError{Formula: src, Err: err}
	}

	return &Function{formula: src, program: program}, nil
}

// MustCompile is like Compile but panics on error. Use it for formulas that
// are known at build time.
func MustCompile(formula string) *Function {
	f, err := Compile(formula)
	if err != nil {
		panic(err)
	}

	return f
}

// Eval evaluates the formula at x.
//
// Errors: ErrRuntime, ErrNotNumeric, ErrNotFinite; each message names x.
func (f *Function) Eval(x float64) (float64, error) {
	vars := baseEnv
	vars.X = x

	out, err := expr.Run(f.program, vars)
	if err != nil {
		return 0, fmt.Errorf("f(%g): %w: %v", x, ErrRuntime, err)
	}
	y, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("f(%g) = %v (%T): %w", x, out, out, ErrNotNumeric)
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("f(%g) = %g: %w", x, y, ErrNotFinite)
	}

	return y, nil
}

// Func adapts f to the solver's function type.
func (f *Function) Func() bisection.Func { return f.Eval }

// String returns the normalized formula.
func (f *Function) String() string { return f.formula }
