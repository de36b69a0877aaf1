// Package cli wires the solvers to the command line.
//
//	vcm bisection --function "x^3 - x - 2" --a 1 --b 2 --chart root.html
//	vcm gauss --example system1 --show-steps
//	vcm gauss --size 2 --matrix "4,3,1; 6,3,1"
//	vcm presets
//
// Every flag can also be set through a VCM_* environment variable
// (VCM_MAX_ITERATIONS for --max-iterations) or a YAML file passed with
// --config. Flags win over the environment, which wins over the file.
package cli
