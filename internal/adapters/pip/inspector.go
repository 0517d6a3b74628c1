package pip

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/pavetool/pave/internal/core/domain"
	"go.trai.ch/zerr"
)

// listedPackage is one row of `pip list --format json` output.
type listedPackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Installed lists the currently installed top-level packages.
//
// `--not-required` restricts the listing to packages nothing else depends on,
// which is exactly the view the reconciliation engine diffs against: removing
// an entry from it can orphan new entries on the next query.
func (c *CLI) Installed(ctx context.Context, venv domain.Venv, includeBase bool) ([]string, error) {
	args := []string{"list", "--not-required", "--format", "json", disableVersionCheck}

	var stdout, stderr bytes.Buffer
	if err := c.runner.Run(ctx, &stdout, &stderr, venv.Pip(), args...); err != nil {
		return nil, pipError(err, args, stderr.String())
	}

	var listed []listedPackage
	if err := json.Unmarshal(stdout.Bytes(), &listed); err != nil {
		return nil, zerr.Wrap(err, "failed to parse pip list output")
	}

	installed := make([]string, 0, len(listed))
	for _, pkg := range listed {
		name := domain.Fold(pkg.Name)
		if !includeBase && domain.IsBasePackage(name) {
			continue
		}
		installed = append(installed, name)
	}
	return installed, nil
}
