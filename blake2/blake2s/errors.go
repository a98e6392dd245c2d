package blake2s

import "github.com/pkg/errors"

// Sentinel errors returned by this package. Compare against these with
// errors.Is, or errors.Cause, rather than matching on string content.
var (
	ErrInvalidParameter  = errors.New("blake2s: invalid parameter")
	ErrShortBuffer       = errors.New("blake2s: short output buffer")
	ErrUsedAfterFinalize = errors.New("blake2s: update after finalize without reset")
)
