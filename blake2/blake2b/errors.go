package blake2b

import "github.com/pkg/errors"

// Sentinel errors returned by this package. Compare against these with
// errors.Is, or errors.Cause, rather than matching on string content.
var (
	ErrInvalidParameter  = errors.New("blake2b: invalid parameter")
	ErrShortBuffer       = errors.New("blake2b: short output buffer")
	ErrUsedAfterFinalize = errors.New("blake2b: update after finalize without reset")
)
