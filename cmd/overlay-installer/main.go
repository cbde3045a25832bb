package main

import (
	"io"
	"os"

	"github.com/eagraf/overlay-installer/internal/installer"
	"github.com/eagraf/overlay-installer/internal/logging"
	"github.com/eagraf/overlay-installer/internal/vr"
	"github.com/eagraf/overlay-installer/internal/vr/openvr"
	"github.com/rs/zerolog"
)

const version = "v0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, openvr.NewRuntime()))
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer, runtime vr.Runtime) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd := newRootCmd(stdout, stderr, runtime)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		logging.NewLogger(stdout, stderr, zerolog.InfoLevel).Error(errorMessage(err))
	}
	return installer.ExitCode(err)
}
