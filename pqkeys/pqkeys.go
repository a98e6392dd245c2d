// Package pqkeys implements asymmetric key record shapes: a
// (parameter-set tag, coefficient-vector) pair with a fixed
// little-endian serialized form. CEX ships one C++ class per
// scheme/key-half (MPKCPublicKey, NTRUPrivateKey, ...), each with an
// identical ToBytes/from-stream constructor pair differing only in the
// width of the tag and length fields; this package keeps that as one
// generic Key type parameterized by a Scheme descriptor rather than
// fourteen near-duplicate structs, with a constructor per scheme for the
// public API surface CEX exposed.
package pqkeys

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrDeserialization is returned when serialized key bytes are truncated
// or the length field doesn't match the remaining bytes. The tag value is
// not checked against any list of known parameter sets.
var ErrDeserialization = errors.New("pqkeys: malformed key record")

// Scheme identifies one of the seven post-quantum primitives CEX carries
// key-record shapes for, split by public/private half.
type Scheme byte

const (
	SchemeMcElieceNone Scheme = iota
	SchemeMcEliecePublic
	SchemeMcEliecePrivate
	SchemeNTRUPublic
	SchemeNTRUPrivate
	SchemeMLWEPublic
	SchemeMLWEPrivate
	SchemeRLWEPublic
	SchemeRLWEPrivate
	SchemeDilithiumPublic
	SchemeDilithiumPrivate
	SchemePicnicPublic
	SchemePicnicPrivate
	SchemeSphincsPublic
	SchemeSphincsPrivate
)

func (s Scheme) String() string {
	switch s {
	case SchemeMcEliecePublic:
		return "MPKCPublicKey"
	case SchemeMcEliecePrivate:
		return "MPKCPrivateKey"
	case SchemeNTRUPublic:
		return "NTRUPublicKey"
	case SchemeNTRUPrivate:
		return "NTRUPrivateKey"
	case SchemeMLWEPublic:
		return "MLWEPublicKey"
	case SchemeMLWEPrivate:
		return "MLWEPrivateKey"
	case SchemeRLWEPublic:
		return "RLWEPublicKey"
	case SchemeRLWEPrivate:
		return "RLWEPrivateKey"
	case SchemeDilithiumPublic:
		return "DilithiumPublicKey"
	case SchemeDilithiumPrivate:
		return "DilithiumPrivateKey"
	case SchemePicnicPublic:
		return "PicnicPublicKey"
	case SchemePicnicPrivate:
		return "PicnicPrivateKey"
	case SchemeSphincsPublic:
		return "SphincsPublicKey"
	case SchemeSphincsPrivate:
		return "SphincsPrivateKey"
	default:
		return "unknown"
	}
}

// headerLayout describes the tag/length field widths a scheme's
// serialized form uses. CEX has exactly two families: McEliece and RLWE
// use a 2-byte tag and a 2-byte length; everything else uses a 1-byte tag
// and a 4-byte length.
type headerLayout struct {
	tagWidth    int
	lengthWidth int
}

var narrowHeader = headerLayout{tagWidth: 2, lengthWidth: 2}
var wideHeader = headerLayout{tagWidth: 1, lengthWidth: 4}

func layoutFor(s Scheme) headerLayout {
	switch s {
	case SchemeMcEliecePublic, SchemeMcEliecePrivate, SchemeRLWEPublic, SchemeRLWEPrivate:
		return narrowHeader
	default:
		return wideHeader
	}
}

// Key is the generic (parameter-set, coefficient-vector) record. It
// carries no cryptographic logic of its own: construction, wire encoding
// and zeroization are all this package does.
type Key struct {
	Scheme       Scheme
	ParameterSet uint16
	Coefficients []byte
}

func newKey(scheme Scheme, parameterSet uint16, coefficients []byte) *Key {
	return &Key{Scheme: scheme, ParameterSet: parameterSet, Coefficients: coefficients}
}

// MarshalBinary encodes the key in CEX's exact wire format for its scheme:
// tag, then length, then raw coefficient bytes, little-endian throughout.
func (k *Key) MarshalBinary() ([]byte, error) {
	layout := layoutFor(k.Scheme)
	header := layout.tagWidth + layout.lengthWidth
	out := make([]byte, header+len(k.Coefficients))

	switch layout.tagWidth {
	case 1:
		out[0] = byte(k.ParameterSet)
	case 2:
		binary.LittleEndian.PutUint16(out[0:2], k.ParameterSet)
	}

	switch layout.lengthWidth {
	case 2:
		binary.LittleEndian.PutUint16(out[layout.tagWidth:header], uint16(len(k.Coefficients)))
	case 4:
		binary.LittleEndian.PutUint32(out[layout.tagWidth:header], uint32(len(k.Coefficients)))
	}

	copy(out[header:], k.Coefficients)
	return out, nil
}

// UnmarshalBinary decodes data into k per scheme, validating that the
// encoded length matches the remaining bytes exactly.
func (k *Key) UnmarshalBinary(data []byte) error {
	layout := layoutFor(k.Scheme)
	header := layout.tagWidth + layout.lengthWidth
	if len(data) < header {
		return errors.Wrapf(ErrDeserialization, "%s: truncated header", k.Scheme)
	}

	var tag uint16
	switch layout.tagWidth {
	case 1:
		tag = uint16(data[0])
	case 2:
		tag = binary.LittleEndian.Uint16(data[0:2])
	}

	var length uint32
	switch layout.lengthWidth {
	case 2:
		length = uint32(binary.LittleEndian.Uint16(data[layout.tagWidth:header]))
	case 4:
		length = binary.LittleEndian.Uint32(data[layout.tagWidth:header])
	}

	if uint64(header)+uint64(length) != uint64(len(data)) {
		return errors.Wrapf(ErrDeserialization, "%s: length field %d inconsistent with %d remaining bytes", k.Scheme, length, len(data)-header)
	}

	k.ParameterSet = tag
	k.Coefficients = append([]byte(nil), data[header:]...)
	return nil
}

// Zeroize overwrites the coefficient vector before the Key is dropped.
func (k *Key) Zeroize() {
	for i := range k.Coefficients {
		k.Coefficients[i] = 0
	}
	k.Coefficients = nil
	k.ParameterSet = 0
}

// NewMPKCPublicKey constructs a McEliece public-key record (MPKCPublicKey.cpp).
func NewMPKCPublicKey(parameterSet uint16, p []byte) *Key {
	return newKey(SchemeMcEliecePublic, parameterSet, p)
}

// NewMPKCPrivateKey constructs a McEliece private-key record (MPKCPrivateKey.cpp).
func NewMPKCPrivateKey(parameterSet uint16, s []byte) *Key {
	return newKey(SchemeMcEliecePrivate, parameterSet, s)
}

// NewNTRUPublicKey constructs an NTRU public-key record (NTRUPublicKey.cpp).
func NewNTRUPublicKey(parameterSet byte, p []byte) *Key {
	return newKey(SchemeNTRUPublic, uint16(parameterSet), p)
}

// NewNTRUPrivateKey constructs an NTRU private-key record, mirroring
// NTRUPublicKey.cpp's layout (CEX's NTRU key pair reuses the public-key
// wire shape for the private half).
func NewNTRUPrivateKey(parameterSet byte, f []byte) *Key {
	return newKey(SchemeNTRUPrivate, uint16(parameterSet), f)
}

// NewMLWEPublicKey constructs a Module-LWE public-key record (MLWEPublicKey.cpp).
func NewMLWEPublicKey(parameterSet byte, p []byte) *Key {
	return newKey(SchemeMLWEPublic, uint16(parameterSet), p)
}

// NewMLWEPrivateKey constructs a Module-LWE private-key record (MLWEPrivateKey.cpp).
func NewMLWEPrivateKey(parameterSet byte, s []byte) *Key {
	return newKey(SchemeMLWEPrivate, uint16(parameterSet), s)
}

// NewRLWEPublicKey constructs a Ring-LWE public-key record (RLWEPublicKey.cpp).
func NewRLWEPublicKey(parameterSet uint16, p []byte) *Key {
	return newKey(SchemeRLWEPublic, parameterSet, p)
}

// NewRLWEPrivateKey constructs a Ring-LWE private-key record (RLWEPrivateKey.cpp).
func NewRLWEPrivateKey(parameterSet uint16, r []byte) *Key {
	return newKey(SchemeRLWEPrivate, parameterSet, r)
}

// NewDilithiumPublicKey constructs a Dilithium public-key record (DilithiumPublicKey.cpp).
func NewDilithiumPublicKey(parameterSet byte, p []byte) *Key {
	return newKey(SchemeDilithiumPublic, uint16(parameterSet), p)
}

// NewDilithiumPrivateKey constructs a Dilithium private-key record (DilithiumPrivateKey.cpp).
func NewDilithiumPrivateKey(parameterSet byte, s []byte) *Key {
	return newKey(SchemeDilithiumPrivate, uint16(parameterSet), s)
}

// NewPicnicPublicKey constructs a Picnic public-key record (PicnicPublicKey.cpp).
func NewPicnicPublicKey(parameterSet byte, p []byte) *Key {
	return newKey(SchemePicnicPublic, uint16(parameterSet), p)
}

// NewPicnicPrivateKey constructs a Picnic private-key record (PicnicPrivateKey.cpp).
func NewPicnicPrivateKey(parameterSet byte, s []byte) *Key {
	return newKey(SchemePicnicPrivate, uint16(parameterSet), s)
}

// NewSphincsPublicKey constructs a Sphincs public-key record (SphincsPublicKey.cpp).
func NewSphincsPublicKey(parameterSet byte, p []byte) *Key {
	return newKey(SchemeSphincsPublic, uint16(parameterSet), p)
}

// NewSphincsPrivateKey constructs a Sphincs private-key record (SphincsPrivateKey.cpp).
func NewSphincsPrivateKey(parameterSet byte, s []byte) *Key {
	return newKey(SchemeSphincsPrivate, uint16(parameterSet), s)
}

// NewKeyFromBytes decodes data as scheme's wire format in one call.
func NewKeyFromBytes(scheme Scheme, data []byte) (*Key, error) {
	k := &Key{Scheme: scheme}
	if err := k.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return k, nil
}
