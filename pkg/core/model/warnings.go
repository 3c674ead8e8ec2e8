package model

import "errors"

// ErrZeroCapacity marks an owner whose net capacity is 0: its FTE requirement
// is undefined and must be rendered distinctly, never divided or zeroed.
var ErrZeroCapacity = errors.New("net capacity is zero, etp_calcule is undefined")

// ErrBackendUnavailable marks a failed authoritative scoring call. Recoverable:
// the caller falls back to local recomputation with client-fallback provenance.
var ErrBackendUnavailable = errors.New("authoritative scoring backend unavailable")

// WarningCode identifies a class of non-fatal data-quality issue
type WarningCode string

const (
	// WarningUnparsableVolume is raised when a raw quantity could not be
	// parsed; the value defaults to 0 for aggregation.
	WarningUnparsableVolume WarningCode = "unparsable_volume"

	// WarningUnknownTask is raised when a volume references a task code
	// absent from the referential; it contributes zero hours.
	WarningUnknownTask WarningCode = "unknown_task"

	// WarningUnknownOwner is raised when a volume references an owner
	// outside the simulated hierarchy; it is ignored.
	WarningUnknownOwner WarningCode = "unknown_owner"
)

// Warning is a non-fatal data-quality finding reported alongside results
type Warning struct {
	Code    WarningCode `json:"code"`
	OwnerID string      `json:"owner_id,omitempty"`
	Detail  string      `json:"detail"`
}
