package sha256

import "golang.org/x/sys/cpu"

type compressFunc func(h *[8]uint32, block []byte)

// backend is chosen once, at package init, never re-checked per call or
// per Digest: the capability probe stays off the hot path. cpu.X86 reads
// as all-false on non-x86 hosts, so this falls back to the portable
// implementation there.
var backend compressFunc = selectBackend()

func selectBackend() compressFunc {
	if cpu.X86.HasSHA {
		return compressSHANI
	}
	return compressGeneric
}
