package logger

import (
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/msgstore/deployer/cmd/flags"
	"github.com/msgstore/deployer/pkg/polylog"
	"github.com/msgstore/deployer/pkg/polylog/polyzero"
)

var (
	// LogLevel is the value of the --log-level flag.
	LogLevel string
	// LogOutput is the value of the --log-output flag.
	LogOutput string

	// Logger is the logger set up by PreRunESetup. It is also attached to the
	// command's context.
	Logger polylog.Logger = polylog.DefaultContextLogger
)

// AddLoggerFlagsToCmd registers --log-level and --log-output on cmd and its
// subcommands.
func AddLoggerFlagsToCmd(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&LogLevel, flags.FlagLogLevel, flags.DefaultLogLevel, flags.FlagLogLevelUsage)
	cmd.PersistentFlags().StringVar(&LogOutput, flags.FlagLogOutput, flags.DefaultLogOutput, flags.FlagLogOutputUsage)
}

// PreRunESetup builds Logger from the logger flags and attaches it to the
// command's context. It is intended to be used as a cobra (Persistent)PreRunE.
func PreRunESetup(cmd *cobra.Command, _ []string) error {
	if !isValidLevel(LogLevel) {
		return flags.ErrFlagInvalidValue.Wrapf("--%s %q", flags.FlagLogLevel, LogLevel)
	}

	var output io.Writer
	switch LogOutput {
	case "", flags.DefaultLogOutput:
		// Keep stdout for the command's results.
		output = cmd.ErrOrStderr()
	default:
		logFile, err := os.OpenFile(LogOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return flags.ErrFlagInvalidValue.Wrapf("--%s: %s", flags.FlagLogOutput, err)
		}
		// The file stays open for the lifetime of the process.
		output = logFile
	}

	Logger = polyzero.NewLogger(
		polyzero.WithLevel(polyzero.ParseLevel(LogLevel)),
		polyzero.WithOutput(output),
		polyzero.WithTimestamp(),
	)
	cmd.SetContext(Logger.WithContext(cmd.Context()))

	return nil
}

func isValidLevel(levelStr string) bool {
	return slices.ContainsFunc(polyzero.Levels(), func(level polyzero.Level) bool {
		return level.String() == levelStr
	})
}
