package rpmdb

import (
	"context"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Runner executes an external command and returns its standard output.
// The default implementation shells out; tests substitute canned
// output. No timeout is imposed here, callers control cancellation
// through the context.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	logrus.Tracef("Running command: %s %v", name, args)
	return exec.CommandContext(ctx, name, args...).Output()
}
