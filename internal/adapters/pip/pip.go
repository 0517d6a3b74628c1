// Package pip adapts the pip command line tool to the core collaborator ports.
package pip

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/pavetool/pave/internal/core/domain"
	"github.com/pavetool/pave/internal/core/ports"
	"go.trai.ch/zerr"
)

// disableVersionCheck is passed to every pip invocation so reconciliation
// output is not polluted by upgrade notices.
const disableVersionCheck = "--disable-pip-version-check"

// CLI implements the EnvironmentInspector and PackageManager ports by
// shelling out to the pip binary inside the target virtualenv.
type CLI struct {
	logger ports.Logger
	runner runner
}

// New creates a pip CLI adapter.
func New(logger ports.Logger) *CLI {
	return &CLI{
		logger: logger,
		runner: execRunner{},
	}
}

// runner abstracts process execution so tests can substitute pip.
type runner interface {
	Run(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // binary path comes from the validated manifest
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// pipError wraps a failed pip invocation with the detail the caller needs to
// print the failing operation: the argument list, the exit code, and the
// captured stderr tail.
func pipError(err error, args []string, stderr string) error {
	pipErr := zerr.With(err, "args", strings.Join(args, " "))
	pipErr = zerr.With(pipErr, "exit_code", exitCode(err))
	pipErr = zerr.With(pipErr, "stderr", strings.TrimSpace(stderr))
	return errors.Join(domain.ErrPipFailed, pipErr)
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1 // unknown or signal
}

// logWriter forwards process output lines to the logger.
type logWriter struct {
	logger ports.Logger
}

func (w *logWriter) Write(p []byte) (int, error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if line != "" {
			w.logger.Info(line)
		}
	}
	return len(p), nil
}

// outputSink returns the writer process output should stream to: the vertex
// recorded for the current phase when present, the logger otherwise.
func (c *CLI) outputSink(ctx context.Context) io.Writer {
	if v, ok := ports.VertexFromContext(ctx); ok {
		return v.Stdout()
	}
	return &logWriter{logger: c.logger}
}
