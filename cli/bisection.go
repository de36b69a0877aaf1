// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/vcm/bisection"
	"github.com/katalvlaran/vcm/chart"
	"github.com/katalvlaran/vcm/input"
	"github.com/katalvlaran/vcm/report"
)

// Configuration keys of the bisection command.
const (
	keyFunction      = "function"
	keyA             = "a"
	keyB             = "b"
	keyPrecision     = "precision"
	keyMaxIterations = "max-iterations"
	keyChart         = "chart"
)

type bisectionCmd struct {
	*Context
}

// NewBisectionCmd builds the "vcm bisection" command.
func NewBisectionCmd(cxt *Context) *cobra.Command {
	bisectCmd := &bisectionCmd{Context: cxt}
	def := input.DefaultBisectionForm()

	cmd := &cobra.Command{
		Use:     "bisection",
		Aliases: []string{"bisect"},
		Short:   "Find a root of f(x) on [a, b] by interval halving",
		Example: `
  vcm bisection
  vcm bisection --function "cos(x) - x" --a 0 --b 1 --precision 1e-8
  vcm bisection -f "exp(x/10) - 3" --a 0 --b 40 --chart exp.html
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return bisectCmd.run()
		},
	}
	f := cmd.Flags()
	f.StringP(keyFunction, "f", def.Formula, "function of x, e.g. \"x^2 - 4\"")
	f.String(keyA, def.A, "lower bound of the bracket")
	f.String(keyB, def.B, "upper bound of the bracket")
	f.String(keyPrecision, def.Precision, "tolerance for the bracket width and |f(x)|")
	f.String(keyMaxIterations, def.MaxIterations, fmt.Sprintf("iteration cap (%d-%d)", input.MinIterations, input.MaxIterations))
	f.String(keyChart, "", "write a chart of f(x) to this .html, .png or .svg file")

	return cmd
}

func (c *bisectionCmd) form() input.BisectionForm {
	return input.BisectionForm{
		Formula:       c.Viper.GetString(keyFunction),
		A:             c.Viper.GetString(keyA),
		B:             c.Viper.GetString(keyB),
		Precision:     c.Viper.GetString(keyPrecision),
		MaxIterations: c.Viper.GetString(keyMaxIterations),
	}
}

func (c *bisectionCmd) run() error {
	params, err := input.Bisection(c.form())
	if err != nil {
		return c.reported(err)
	}

	chartPath := c.Viper.GetString(keyChart)
	chartFormat := ""
	if chartPath != "" {
		if chartFormat, err = chart.FormatFromPath(chartPath); err != nil {
			return c.reported(err)
		}
	}

	log := c.Log.WithFields(logrus.Fields{
		"function":  params.Function.String(),
		"a":         params.A,
		"b":         params.B,
		"precision": params.Options.Precision,
	})
	log.Debug("running bisection")

	fn := params.Function.Func()
	res, solveErr := bisection.Solve(fn, params.A, params.B, params.Options)
	report.WriteBisection(c.Output, report.Bisection{
		Formula: params.Function.String(),
		Result:  res,
		Err:     solveErr,
		F:       fn,
	})

	if res.HasRoot {
		log.WithFields(logrus.Fields{
			"root":       res.Root,
			"iterations": res.Stats.TotalIterations,
			"converged":  res.Stats.Converged,
			"elapsed":    res.Stats.Elapsed,
		}).Info("bisection finished")

		if chartPath != "" {
			root := res.Root
			data := chart.Sample(fn, params.A, params.B, &root)
			if err := writeChart(chartPath, chartFormat, "f(x) = "+params.Function.String(), data); err != nil {
				log.WithError(err).Error("writing chart")
				return c.reported(err)
			}
			log.WithField("path", chartPath).Info("chart written")
		}
	}

	if solveErr != nil {
		log.WithError(solveErr).Warn("bisection failed")
		return fmt.Errorf("%w: %v", errReported, solveErr)
	}

	return nil
}

// writeChart renders data into a new file at path.
func writeChart(path, format, title string, data chart.Data) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return chart.Render(f, title, format, data)
}

// reported writes the user message for err and marks it as reported.
func (c *Context) reported(err error) error {
	fmt.Fprintf(c.Output, "Error: %s\n", report.Message(err))

	return fmt.Errorf("%w: %v", errReported, err)
}
