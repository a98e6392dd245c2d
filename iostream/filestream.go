// Package iostream provides a seekable byte-stream wrapper over an
// on-disk file, grounded on CEX's FileStream: read/write with position
// tracking, origin-relative seeking, length truncation, and a
// block-chunked copy primitive so large files can be streamed into a
// digest or KDF without loading them into memory whole.
package iostream

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// DefaultBlockSize is the chunk size CopyTo reads/writes at a time,
// matching FileStream.cpp's MemoryStream block size used for CopyTo.
const DefaultBlockSize = 64 * 1024

// ErrReadOnly is returned by Write/WriteByte/SetLength on a stream
// opened via Open (read-only).
var ErrReadOnly = errors.New("iostream: stream is read-only")

// ErrWriteOnly is returned by Read/ReadByte/CopyTo on a stream opened via
// OpenAppend (write-only).
var ErrWriteOnly = errors.New("iostream: stream is write-only")

// ErrClosed is returned by any operation on a FileStream after Close.
var ErrClosed = errors.New("iostream: stream is closed")

// Origin selects the reference point for Seek, mirroring CEX's
// SeekOrigin enumeration (Begin/Current/End over std::ios).
type Origin int

const (
	SeekBegin Origin = iota
	SeekCurrent
	SeekEnd
)

// FileStream wraps an *os.File with CEX's FileStream semantics: a
// tracked position and size, and read/write guards based on how the
// file was opened.
type FileStream struct {
	file      *os.File
	position  int64
	size      int64
	readOnly  bool
	writeOnly bool
	closed    bool
}

// Open opens name for reading only, equivalent to FileStream's
// FileAccess::Read constructor mode.
func Open(name string) (*FileStream, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "iostream: open")
	}
	return newFileStream(f, true, false)
}

// Create opens (or truncates) name for reading and writing, equivalent
// to FileStream's FileAccess::ReadWrite constructor mode.
func Create(name string) (*FileStream, error) {
	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return nil, errors.Wrap(err, "iostream: create")
	}
	return newFileStream(f, false, false)
}

// OpenAppend opens (or creates) name for write-only appending at its
// current end of file.
func OpenAppend(name string) (*FileStream, error) {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE, 0o600)
	if err != nil {
		return nil, errors.Wrap(err, "iostream: open append")
	}
	fs, err := newFileStream(f, false, true)
	if err != nil {
		return nil, err
	}
	if _, err := fs.Seek(0, SeekEnd); err != nil {
		fs.Close()
		return nil, err
	}
	return fs, nil
}

func newFileStream(f *os.File, readOnly, writeOnly bool) (*FileStream, error) {
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "iostream: stat")
	}
	return &FileStream{file: f, size: info.Size(), readOnly: readOnly, writeOnly: writeOnly}, nil
}

// Close flushes and closes the underlying file.
func (fs *FileStream) Close() error {
	if fs.closed {
		return nil
	}
	fs.closed = true
	return errors.Wrap(fs.file.Close(), "iostream: close")
}

// Flush commits any buffered writes to stable storage.
func (fs *FileStream) Flush() error {
	if fs.closed {
		return ErrClosed
	}
	return errors.Wrap(fs.file.Sync(), "iostream: flush")
}

// Size returns the current length of the stream in bytes.
func (fs *FileStream) Size() int64 {
	return fs.size
}

// Position returns the current read/write offset.
func (fs *FileStream) Position() int64 {
	return fs.position
}

// CanRead reports whether Read/ReadByte are usable on this stream.
func (fs *FileStream) CanRead() bool {
	return !fs.writeOnly
}

// CanWrite reports whether Write/WriteByte are usable on this stream.
func (fs *FileStream) CanWrite() bool {
	return !fs.readOnly
}

// Read reads up to len(buf) bytes starting at the current position,
// clamped to the remaining stream length the way FileStream.Read
// clamps Count to _fileSize - _filePosition.
func (fs *FileStream) Read(buf []byte) (int, error) {
	if fs.closed {
		return 0, ErrClosed
	}
	if fs.writeOnly {
		return 0, ErrWriteOnly
	}
	remaining := fs.size - fs.position
	if remaining <= 0 {
		return 0, io.EOF
	}
	if int64(len(buf)) > remaining {
		buf = buf[:remaining]
	}
	n, err := fs.file.Read(buf)
	fs.position += int64(n)
	if err != nil && err != io.EOF {
		return n, errors.Wrap(err, "iostream: read")
	}
	return n, err
}

// ReadByte reads and returns the next byte, advancing the position.
func (fs *FileStream) ReadByte() (byte, error) {
	var b [1]byte
	n, err := fs.Read(b[:])
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}
	return b[0], nil
}

// Write writes buf at the current position, growing the tracked size
// when writing extends past the previous end of stream.
func (fs *FileStream) Write(buf []byte) (int, error) {
	if fs.closed {
		return 0, ErrClosed
	}
	if fs.readOnly {
		return 0, ErrReadOnly
	}
	n, err := fs.file.Write(buf)
	fs.position += int64(n)
	if fs.position > fs.size {
		fs.size = fs.position
	}
	if err != nil {
		return n, errors.Wrap(err, "iostream: write")
	}
	return n, nil
}

// WriteByte writes a single byte at the current position.
func (fs *FileStream) WriteByte(b byte) error {
	_, err := fs.Write([]byte{b})
	return err
}

// Seek repositions the stream relative to origin, matching CEX's
// Begin/Current/End handling, and refreshes the tracked position from
// the result.
func (fs *FileStream) Seek(offset int64, origin Origin) (int64, error) {
	if fs.closed {
		return 0, ErrClosed
	}
	var whence int
	switch origin {
	case SeekBegin:
		whence = io.SeekStart
	case SeekCurrent:
		whence = io.SeekCurrent
	case SeekEnd:
		whence = io.SeekEnd
	default:
		return 0, errors.Errorf("iostream: unknown seek origin %d", origin)
	}
	pos, err := fs.file.Seek(offset, whence)
	if err != nil {
		return 0, errors.Wrap(err, "iostream: seek")
	}
	fs.position = pos
	return pos, nil
}

// Reset seeks back to the beginning of the stream.
func (fs *FileStream) Reset() error {
	_, err := fs.Seek(0, SeekBegin)
	return err
}

// SetLength truncates or extends the stream to length bytes, seeking
// back to the start afterward as FileStream.SetLength does.
func (fs *FileStream) SetLength(length int64) error {
	if fs.closed {
		return ErrClosed
	}
	if fs.readOnly {
		return ErrReadOnly
	}
	if err := fs.file.Truncate(length); err != nil {
		return errors.Wrap(err, "iostream: set length")
	}
	fs.size = length
	return fs.Reset()
}

// CopyTo streams the remainder of the file to dst in DefaultBlockSize
// chunks, leaving the source position at end of file.
func (fs *FileStream) CopyTo(dst io.Writer) (int64, error) {
	if fs.closed {
		return 0, ErrClosed
	}
	if fs.writeOnly {
		return 0, ErrWriteOnly
	}
	buf := make([]byte, DefaultBlockSize)
	var total int64
	for {
		n, err := fs.Read(buf)
		if n > 0 {
			written, werr := dst.Write(buf[:n])
			total += int64(written)
			if werr != nil {
				return total, errors.Wrap(werr, "iostream: copy write")
			}
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// Exists reports whether name refers to a regular, accessible file.
func Exists(name string) bool {
	info, err := os.Stat(name)
	return err == nil && !info.IsDir()
}

// Size returns the size in bytes of name without opening a FileStream.
func Size(name string) (int64, error) {
	info, err := os.Stat(name)
	if err != nil {
		return 0, errors.Wrap(err, "iostream: size")
	}
	return info.Size(), nil
}
