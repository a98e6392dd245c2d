package main

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// decodeFlags turns the shared --key/--salt/--personal hex flags into raw
// bytes, nil where the flag was left empty.
func decodeFlags() (key, salt, personal []byte, err error) {
	if key, err = decodeHexFlag("key", keyHex); err != nil {
		return nil, nil, nil, err
	}
	if salt, err = decodeHexFlag("salt", saltHex); err != nil {
		return nil, nil, nil, err
	}
	if personal, err = decodeHexFlag("personal", personalHex); err != nil {
		return nil, nil, nil, err
	}
	return key, salt, personal, nil
}

func decodeHexFlag(name, value string) ([]byte, error) {
	if value == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(value)
	if err != nil {
		return nil, errors.Wrapf(err, "cryptosum: --%s is not valid hex", name)
	}
	return b, nil
}
