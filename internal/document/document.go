package document

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrNotFound is returned when the requested path does not exist.
	ErrNotFound = errors.New("file does not exist")
	// ErrNotText is returned when the file is not valid UTF-8 text.
	ErrNotText = errors.New("file is not valid UTF-8 text")
)

// FileError describes a failure to turn a path into document text.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Exists reports whether path names an existing regular file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Load reads the whole file at path into memory.
//
// A UTF-8 byte order mark is dropped and UTF-16 files carrying a BOM are
// transcoded to UTF-8. Anything else must already be valid UTF-8.
func Load(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &FileError{Op: "stat", Path: path, Err: ErrNotFound}
		}
		return "", &FileError{Op: "stat", Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &FileError{Op: "read", Path: path, Err: errors.New("is a directory")}
	}

	f, err := os.Open(path)
	if err != nil {
		return "", &FileError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	text, err := Decode(f)
	if err != nil {
		return "", &FileError{Op: "read", Path: path, Err: err}
	}
	return text, nil
}

// Decode reads r to the end and returns its contents as UTF-8 text.
func Decode(r io.Reader) (string, error) {
	decoder := unicode.BOMOverride(encoding.UTF8Validator)
	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return "", ErrNotText
		}
		return "", err
	}
	return string(data), nil
}
