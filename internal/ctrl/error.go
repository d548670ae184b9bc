package ctrl

import "errors"

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a resource already exists.
var ErrAlreadyExists = errors.New("already exists")

// ErrTokenGenerationExhausted is returned when the issuer runs out of
// collision retries. Seeing it in the wild means the RNG is broken.
var ErrTokenGenerationExhausted = errors.New("token generation exhausted")

// Resolution failures. Each reason drives a different client remedy, so
// they are distinct errors rather than a generic denial.
var ErrUnknownDevice = errors.New("unknown device")
var ErrUnknownToken = errors.New("unknown token")
var ErrTokenExpired = errors.New("token expired")
var ErrDeviceNotEntitled = errors.New("device not entitled to customer")

// ErrOrphanToken marks a token whose owning customer is gone. Cascades
// make this structurally impossible; it is surfaced, never repaired.
var ErrOrphanToken = errors.New("orphan token: owning customer missing")
