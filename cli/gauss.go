// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vcm/gauss"
	"github.com/katalvlaran/vcm/input"
	"github.com/katalvlaran/vcm/matrix"
	"github.com/katalvlaran/vcm/report"
)

// Configuration keys of the gauss command.
const (
	keySize      = "size"
	keyMatrix    = "matrix"
	keyFile      = "file"
	keyExample   = "example"
	keyShowSteps = "show-steps"
)

// ErrUnknownPreset is returned for an --example name that does not exist.
var ErrUnknownPreset = errors.New("cli: unknown example system")

type gaussCmd struct {
	*Context
}

// NewGaussCmd builds the "vcm gauss" command.
func NewGaussCmd(cxt *Context) *cobra.Command {
	gaussCmd := &gaussCmd{Context: cxt}
	cmd := &cobra.Command{
		Use:     "gauss",
		Aliases: []string{"gaussian", "elimination"},
		Short:   "Solve a linear system by Gaussian elimination with partial pivoting",
		Long: `Solve n linear equations in n unknowns given as an augmented matrix [A|b].

The system comes from the first of these that is set:
  --file     a YAML document with a "system" list of rows
  --example  a built-in system (see "vcm presets")
  --matrix   rows separated by ';', values by ',' or blanks
otherwise the identity system of --size with b = 1 is solved.
With --matrix the size is the number of rows unless a size is configured
through --size, VCM_SIZE or the config file.`,
		Example: `
  vcm gauss --example system1
  vcm gauss --matrix "2,1,-1,8; -3,-1,2,-11; -2,1,2,-3"
  vcm gauss --file system.yaml --show-steps=false
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gaussCmd.run()
		},
	}
	f := cmd.Flags()
	f.IntP(keySize, "n", 3, fmt.Sprintf("number of equations (%d-%d)", matrix.MinSize, matrix.MaxSize))
	f.StringP(keyMatrix, "m", "", "augmented matrix, e.g. \"4,3,1; 6,3,1\"")
	f.String(keyFile, "", "YAML file holding the system")
	f.String(keyExample, "", "built-in example system")
	f.Bool(keyShowSteps, true, "print every elimination step")

	return cmd
}

func (c *gaussCmd) run() error {
	name, m, err := c.system()
	if err != nil {
		return c.reported(err)
	}

	log := c.Log.WithFields(logrus.Fields{"system": name, "size": m.Size()})
	log.Debug("running gaussian elimination")

	opts := gauss.DefaultOptions()
	opts.TraceSteps = c.Viper.GetBool(keyShowSteps)
	res, solveErr := gauss.Solve(m, opts)

	out := report.Gauss{Result: res, Err: solveErr, ShowSteps: opts.TraceSteps}
	if solveErr == nil {
		if r, err := gauss.Residual(m, res.Solution); err == nil {
			out.Residual = &r
		}
	}
	report.WriteGauss(c.Output, out)

	if solveErr != nil {
		log.WithError(solveErr).WithField("steps", len(res.Steps)).Warn("elimination failed")
		return fmt.Errorf("%w: %v", errReported, solveErr)
	}
	log.WithFields(logrus.Fields{
		"steps":       len(res.Steps),
		"determinant": res.Determinant,
	}).Info("elimination finished")

	return nil
}

// system resolves the configured input source into an augmented matrix and
// a name for logging.
func (c *gaussCmd) system() (string, *matrix.Augmented, error) {
	switch {
	case c.Viper.GetString(keyFile) != "":
		path := c.Viper.GetString(keyFile)
		f, err := os.Open(path)
		if err != nil {
			return "", nil, err
		}
		defer f.Close()

		name, m, err := matrix.LoadYAML(f)
		if name == "" {
			name = path
		}
		return name, m, err

	case c.Viper.GetString(keyExample) != "":
		name := c.Viper.GetString(keyExample)
		p, ok := gauss.LookupPreset(name)
		if !ok {
			return "", nil, fmt.Errorf("%w %q", ErrUnknownPreset, name)
		}
		m, err := p.System()
		return name, m, err

	case c.Viper.GetString(keyMatrix) != "":
		cells := matrix.ParseRows(c.Viper.GetString(keyMatrix))
		size := len(cells)
		if c.Viper.IsSet(keySize) {
			size = c.Viper.GetInt(keySize)
		}
		m, err := input.Matrix(input.MatrixForm{Size: size, Cells: cells})
		return "matrix", m, err

	default:
		m, err := input.Matrix(input.DefaultMatrixForm(c.Viper.GetInt(keySize)))
		return "default", m, err
	}
}
