// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/vcm/report"
)

// Configuration keys shared by the root command.
const (
	keyConfig    = "config"
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
)

// NewRootCmd builds the "vcm" command tree around cxt.
func NewRootCmd(cxt *Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vcm",
		Short: "Visual numerical calculus: bisection and Gaussian elimination, step by step",
		Long: `vcm runs two classic numerical methods and shows every step:

  bisection  finds a root of f(x) on a bracket [a, b] by interval halving
  gauss      solves a linear system [A|b] by Gaussian elimination with partial pivoting`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(cxt.Viper, cmd.Flags()); err != nil {
				return err
			}
			if err := loadConfig(cxt.Viper); err != nil {
				return err
			}

			return configureLogger(cxt.Log, cxt.Viper.GetString(keyLogLevel), cxt.Viper.GetString(keyLogFormat))
		},
	}

	cmd.PersistentFlags().String(keyConfig, "", "YAML configuration file")
	cmd.PersistentFlags().String(keyLogLevel, "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String(keyLogFormat, "text", "log format (text, json)")

	cmd.AddCommand(
		NewBisectionCmd(cxt),
		NewGaussCmd(cxt),
		NewPresetsCmd(cxt),
	)

	return cmd
}

// NewContext returns a Context writing results to out and logs to logOut,
// with a fresh viper instance bound to VCM_* environment variables.
func NewContext(out, logOut io.Writer) *Context {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	log := logrus.New()
	log.SetOutput(logOut)

	return &Context{Output: out, Log: log, Viper: v}
}

// Execute runs vcm with args and returns the process exit code.
func Execute(args []string, out, errOut io.Writer) int {
	cxt := NewContext(out, errOut)
	cmd := NewRootCmd(cxt)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	if !errors.Is(err, errReported) {
		fmt.Fprintf(errOut, "Error: %s\n", report.Message(err))
	}

	return 1
}

// bindFlags binds every flag of fs, inherited ones included, to the viper
// key of the same name. Explicit flags then win over environment, config and
// flag defaults.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err == nil {
			err = v.BindPFlag(f.Name, f)
		}
	})

	return err
}

// loadConfig reads the optional --config file. Values from it rank below
// flags and environment variables.
func loadConfig(v *viper.Viper) error {
	path := v.GetString(keyConfig)
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %q: %w", path, err)
	}

	return nil
}

// configureLogger applies level and format to log.
func configureLogger(log *logrus.Logger, level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(lvl)

	switch format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	default:
		return fmt.Errorf("log format %q: want text or json", format)
	}

	return nil
}
