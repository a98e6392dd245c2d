// Package rand provides the two pseudorandom generators carried over from
// CEX's Seed/PRNG layer: CSPRNG, an OS-entropy-backed generator for key
// and nonce material, and ISAAC, Bob Jenkins' non-cryptographic generator
// (CEX's ISCRsg.cpp) used for reproducible sampling and test fixtures.
// Neither is a hash or MAC, and neither uses internal/bitutil.
package rand
