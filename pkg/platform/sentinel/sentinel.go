package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and clients return these
// (optionally wrapped) so services can decide how to degrade.
//
//   - ErrNotFound: nothing usable is stored under the key (absent or expired)
//   - ErrUnavailable: a backing service could not be reached
//
// For caller-input failures, use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
