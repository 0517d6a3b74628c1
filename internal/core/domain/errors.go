package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestNotFound is returned when the project descriptor does not exist.
	ErrManifestNotFound = zerr.New("manifest not found")

	// ErrInvalidManifest is returned when the project descriptor is malformed.
	ErrInvalidManifest = zerr.New("invalid manifest")

	// ErrPipFailed is returned when a pip invocation exits non-zero.
	ErrPipFailed = zerr.New("pip command failed")

	// ErrNoConvergence is returned when a removal pass makes no progress,
	// meaning the environment cannot be reduced to the declared set.
	ErrNoConvergence = zerr.New("environment did not converge")

	// ErrSyncInFlight is returned when a reconciliation run is requested
	// while another one already owns the environment.
	ErrSyncInFlight = zerr.New("sync already in flight")

	// ErrNoPackagesSpecified is returned when add or rm is called without
	// naming any package.
	ErrNoPackagesSpecified = zerr.New("no packages specified")

	// ErrSyncFailed marks reconciliation failures so the CLI entry point
	// can map them to an exit code without re-logging.
	ErrSyncFailed = zerr.New("sync failed")
)
