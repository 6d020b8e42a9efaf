// Package storage implements the file store for uploaded payment
// slips. Slips are written under a configurable directory with a
// generated name encoding the booking ID and the upload timestamp, so
// names never collide and never contain client-controlled path
// segments. The extension allow-list is checked on the filename only;
// file content is stored verbatim.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidFile is returned when the uploaded slip is missing, empty
// or does not carry an allowed image extension. Handlers should
// translate this into an HTTP 400 response.
var ErrInvalidFile = errors.New("slip must be a png, jpg, jpeg or gif image")

// allowedExtensions is the closed set of slip image extensions,
// matched case-insensitively against the uploaded filename.
var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// SlipStore writes slip images to the local filesystem and reports
// the public access path recorded in the Payment row.
type SlipStore struct {
	dir string // filesystem directory receiving the files
}

// NewSlipStore returns a SlipStore rooted at dir, creating the
// directory when it does not exist yet.
func NewSlipStore(dir string) (*SlipStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &SlipStore{dir: dir}, nil
}

// AllowedExtension extracts the lower-cased extension from a filename
// and reports whether it is on the slip allow-list. The boolean is
// false for names without any extension.
func AllowedExtension(filename string) (string, bool) {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 || i == len(filename)-1 {
		return "", false
	}
	ext := strings.ToLower(filename[i+1:])
	return ext, allowedExtensions[ext]
}

// SlipName builds the generated storage name for a slip:
// slip_<bookingID>_<unixTimestamp>.<ext>. The name contains no
// client-provided bytes besides the validated extension.
func SlipName(bookingID uint64, uploadedUnix int64, ext string) string {
	return fmt.Sprintf("slip_%d_%d.%s", bookingID, uploadedUnix, ext)
}

// Save validates the original filename, streams the slip content to
// disk under a generated name and returns the access path to record
// in the database (e.g. /static/uploads/slip_1_1700000000.jpg).
// A nil reader or a disallowed extension yields ErrInvalidFile.
func (s *SlipStore) Save(src io.Reader, originalName string, bookingID uint64, uploadedUnix int64) (string, error) {
	if src == nil || strings.TrimSpace(originalName) == "" {
		return "", ErrInvalidFile
	}
	ext, ok := AllowedExtension(originalName)
	if !ok {
		return "", ErrInvalidFile
	}
	name := SlipName(bookingID, uploadedUnix, ext)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create slip file: %w", err)
	}
	defer dst.Close()
	n, err := io.Copy(dst, src)
	if err != nil {
		return "", fmt.Errorf("write slip file: %w", err)
	}
	if n == 0 {
		// empty upload: remove the zero-byte file and reject
		_ = os.Remove(filepath.Join(s.dir, name))
		return "", ErrInvalidFile
	}
	return s.accessURL(name), nil
}

// accessURL builds the public path recorded in the Payment row. The
// configured dir is cleaned and stripped of any leading slash so both
// relative and absolute upload dirs yield a single-slash URL path.
func (s *SlipStore) accessURL(name string) string {
	prefix := strings.TrimPrefix(filepath.ToSlash(filepath.Clean(s.dir)), "/")
	return "/" + prefix + "/" + name
}
