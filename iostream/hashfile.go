package iostream

import "hash"

// HashFile streams name's contents into h in DefaultBlockSize chunks
// and returns the final digest via h.Sum(nil), without reading the
// whole file into memory at once.
func HashFile(name string, h hash.Hash) ([]byte, error) {
	fs, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer fs.Close()

	if _, err := fs.CopyTo(h); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}
