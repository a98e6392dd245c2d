// Package blake2 is the umbrella for the BLAKE2 hash family: blake2s and
// blake2b implement sequential BLAKE2s-256 and BLAKE2b-512, while blake2sp
// and blake2bp implement their 4-way parallel tree-mode siblings. BLAKE2s is
// optimized for 8- to 32-bit platforms and produces digests of any size
// between 1 and 32 bytes. BLAKE2b is optimized for 64-bit platforms and
// produces digests of any size between 1 and 64 bytes.
package blake2
