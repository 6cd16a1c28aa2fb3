// Package source materializes the text behind a winners, exclude or
// straights input.
//
// An input may be pasted text, the raw bytes of an uploaded file, a path on
// disk or a stream such as stdin. Whatever its origin, Read returns decoded
// text ready for extraction. Decoding is lossy: undecodable bytes are
// dropped and never fail the read.
package source

import (
	"fmt"
	"io"
	"math"
	"os"
)

// DefaultMaxSize is the largest file or stream Read accepts (10MB).
const DefaultMaxSize int64 = 10 * 1024 * 1024

// Kind identifies where a Source gets its text from.
type Kind int

const (
	// KindNone is an absent input. It reads as empty text.
	KindNone Kind = iota
	// KindText is text pasted directly by the user.
	KindText
	// KindBytes is the content of an uploaded file.
	KindBytes
	// KindFile is a path read from disk at Read time.
	KindFile
	// KindReader is a stream such as stdin.
	KindReader
)

// Source describes one input. The zero value is equivalent to None().
//
// Fields:
//   - kind: Origin of the text
//   - name: File path, upload name or stream name
//   - text: Pasted text (KindText)
//   - data: Uploaded bytes (KindBytes)
//   - r: Stream (KindReader)
//   - maxSize: Size limit for files and streams; 0 means DefaultMaxSize
type Source struct {
	kind    Kind
	name    string
	text    string
	data    []byte
	r       io.Reader
	maxSize int64
}

// None returns an absent source.
func None() Source {
	return Source{kind: KindNone}
}

// Text returns a source for pasted text.
func Text(s string) Source {
	return Source{kind: KindText, text: s}
}

// Bytes returns a source for the content of an uploaded file.
//
// Parameters:
//   - name: The upload's file name, used in messages
//   - b: Raw file content in any supported encoding
func Bytes(name string, b []byte) Source {
	return Source{kind: KindBytes, name: name, data: b}
}

// File returns a source that reads path when Read is called.
func File(path string) Source {
	return Source{kind: KindFile, name: path}
}

// Reader returns a source that drains r when Read is called.
//
// Parameters:
//   - name: Stream name for messages (e.g. "stdin")
//   - r: The stream; it is read at most once
func Reader(name string, r io.Reader) Source {
	return Source{kind: KindReader, name: name, r: r}
}

// Prefer picks the source for a file-or-paste input pair.
//
// An uploaded file takes precedence over pasted text; with neither the input
// is absent.
//
// Parameters:
//   - path: File path, may be empty
//   - text: Pasted text, may be empty
//
// Returns:
//   - Source: File(path), Text(text) or None()
func Prefer(path, text string) Source {
	if path != "" {
		return File(path)
	}
	if text != "" {
		return Text(text)
	}
	return None()
}

// WithMaxSize returns a copy of s with a different size limit.
// Values <= 0 restore DefaultMaxSize.
func (s Source) WithMaxSize(n int64) Source {
	s.maxSize = n
	return s
}

// Kind returns the origin of the source.
func (s Source) Kind() Kind {
	return s.kind
}

// IsNone reports whether the source is absent.
func (s Source) IsNone() bool {
	return s.kind == KindNone
}

// Describe returns a short human label for messages and logs.
//
// Returns:
//   - string: e.g. "pasted text", "file winners.csv", "upload w.txt", "stdin"
func (s Source) Describe() string {
	switch s.kind {
	case KindText:
		return "pasted text"
	case KindBytes:
		return "upload " + s.name
	case KindFile:
		return "file " + s.name
	case KindReader:
		return s.name
	default:
		return "no input"
	}
}

// limit returns the effective size limit.
func (s Source) limit() int64 {
	if s.maxSize <= 0 {
		return DefaultMaxSize
	}
	return s.maxSize
}

// Read materializes the source as decoded text.
//
// It performs the following operations:
//   - Step 1: Returns "" for an absent source
//   - Step 2: Loads bytes from the file or stream, enforcing the size limit
//   - Step 3: Decodes the bytes (BOM-aware, invalid bytes dropped, fullwidth digits folded)
//
// Returns:
//   - string: Decoded text
//   - error: When the file or stream cannot be read or exceeds the size limit; decoding never fails
func (s Source) Read() (string, error) {
	switch s.kind {
	case KindNone:
		return "", nil
	case KindText:
		return NormalizeText(s.text), nil
	case KindBytes:
		if int64(len(s.data)) > s.limit() {
			return "", tooLarge(int64(len(s.data)), s.limit())
		}
		return Decode(s.data), nil
	case KindFile:
		return s.readFile()
	case KindReader:
		return s.readStream()
	default:
		return "", fmt.Errorf("unknown source kind %d", s.kind)
	}
}

// readFile reads a file from disk after checking its size.
func (s Source) readFile() (string, error) {
	info, err := os.Stat(s.name)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", s.name)
	}
	if info.Size() > s.limit() {
		return "", tooLarge(info.Size(), s.limit())
	}

	data, err := os.ReadFile(s.name)
	if err != nil {
		return "", err
	}
	return Decode(data), nil
}

// readStream drains the stream up to the size limit.
func (s Source) readStream() (string, error) {
	if s.r == nil {
		return "", nil
	}
	// One byte past the limit tells an over-size stream from one that fits.
	n := s.limit()
	if n < math.MaxInt64 {
		n++
	}
	data, err := io.ReadAll(io.LimitReader(s.r, n))
	if err != nil {
		return "", err
	}
	if int64(len(data)) > s.limit() {
		return "", tooLarge(int64(len(data)), s.limit())
	}
	return Decode(data), nil
}

// tooLarge builds the size-limit error.
func tooLarge(size, limit int64) error {
	return fmt.Errorf("input too large: %d bytes (max %d bytes)", size, limit)
}
