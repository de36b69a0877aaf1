package cli

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables read by vcm.
const EnvPrefix = "VCM"

// Context is shared by every command of one invocation.
type Context struct {
	Output io.Writer
	Log    *logrus.Logger
	Viper  *viper.Viper
}

// errReported marks a failure whose message was already written to Output.
var errReported = errors.New("cli: failure reported")
