package pip

import (
	"bytes"
	"context"

	"github.com/pavetool/pave/internal/core/domain"
)

// Install installs all named packages as one batch pip invocation.
// Pip resolves and pulls in transitive dependencies on its own.
func (c *CLI) Install(ctx context.Context, venv domain.Venv, names []string) error {
	args := append([]string{"install", disableVersionCheck}, names...)

	var stderr bytes.Buffer
	if err := c.runner.Run(ctx, c.outputSink(ctx), &stderr, venv.Pip(), args...); err != nil {
		return pipError(err, args, stderr.String())
	}
	return nil
}

// Uninstall removes all named packages as one batch pip invocation.
func (c *CLI) Uninstall(ctx context.Context, venv domain.Venv, names []string) error {
	args := append([]string{"uninstall", "--yes", disableVersionCheck}, names...)

	var stderr bytes.Buffer
	if err := c.runner.Run(ctx, c.outputSink(ctx), &stderr, venv.Pip(), args...); err != nil {
		return pipError(err, args, stderr.String())
	}
	return nil
}

// Freeze returns the fully resolved dependency graph as the literal output
// of `pip freeze`. The caller persists it verbatim.
func (c *CLI) Freeze(ctx context.Context, venv domain.Venv) ([]byte, error) {
	args := []string{"freeze", disableVersionCheck}

	var stdout, stderr bytes.Buffer
	if err := c.runner.Run(ctx, &stdout, &stderr, venv.Pip(), args...); err != nil {
		return nil, pipError(err, args, stderr.String())
	}
	return stdout.Bytes(), nil
}
