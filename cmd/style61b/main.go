package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var version = "0.1.0"

var log = commonlog.GetLogger("style61b")

// exitError carries the process exit status for a finished command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func usageError(format string, args ...any) error {
	return &exitError{code: 2, err: fmt.Errorf(format, args...)}
}

func newRootCmd() *cobra.Command {
	var verbose int

	rootCmd := newCheckCmd()
	rootCmd.Use = "style61b [flags] <files or dirs>..."
	rootCmd.Short = "Check the Javadoc of Java methods and constructors"
	rootCmd.Version = version
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "log more; repeat for more detail")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		commonlog.Configure(verbose, nil)
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newReportCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var exit *exitError
	if errors.As(err, &exit) {
		if exit.err != nil {
			fmt.Fprintf(os.Stderr, "style61b: %s\n", exit.err)
		}
		return exit.code
	}
	fmt.Fprintf(os.Stderr, "style61b: %s\n", err)
	return 2
}
