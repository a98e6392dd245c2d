package sha256

import "github.com/pkg/errors"

// Sentinel errors returned by this package.
var (
	ErrShortBuffer       = errors.New("sha256: output buffer shorter than Size")
	ErrUsedAfterFinalize = errors.New("sha256: write after finalize without reset")
)
