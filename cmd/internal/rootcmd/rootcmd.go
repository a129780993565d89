// Package rootcmd provides the shared error-to-exit-code mapping used by
// every tvseg CLI binary: 0 on success, 1 on a command-line/input error,
// 2 on any other unhandled error.
package rootcmd

import (
	"errors"
	"os"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// UsageError marks an error as a command-line or input problem (a bad
// flag, an unreadable file, a malformed Matrix-Market header) rather
// than an internal failure.
type UsageError struct {
	cause error
}

func (e *UsageError) Error() string { return e.cause.Error() }
func (e *UsageError) Unwrap() error { return e.cause }

// WrapUsage marks err as a UsageError, adding msg as context.
func WrapUsage(err error, msg string) error {
	return &UsageError{cause: pkgerrors.Wrap(err, msg)}
}

// Execute runs cmd and terminates the process with the exit code
// appropriate to any error it returns.
func Execute(cmd *cobra.Command) {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	runID := uuid.New()
	log.WithField("run_id", runID).WithField("command", cmd.Name()).Debug("starting run")

	if err := cmd.Execute(); err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			log.WithError(err).Error("command-line error")
			os.Exit(1)
		}

		log.WithError(err).Error("unhandled error")
		os.Exit(2)
	}
}

// ConfigureLogging sets the log level from a --debug flag.
func ConfigureLogging(debug bool) {
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	formatter := new(log.TextFormatter)
	formatter.FullTimestamp = true
	log.SetFormatter(formatter)
}
