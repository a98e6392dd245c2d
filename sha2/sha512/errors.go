package sha512

import "github.com/pkg/errors"

// Sentinel errors returned by this package.
var (
	ErrShortBuffer       = errors.New("sha512: output buffer shorter than Size")
	ErrUsedAfterFinalize = errors.New("sha512: write after finalize without reset")
)
