// Command vcm runs the bisection and Gaussian elimination solvers from the
// command line and prints every step they take.
package main

import (
	"os"

	"github.com/katalvlaran/vcm/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
