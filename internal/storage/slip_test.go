package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAllowedExtension(t *testing.T) {
	cases := []struct {
		name string
		ext  string
		ok   bool
	}{
		{"slip.png", "png", true},
		{"slip.jpg", "jpg", true},
		{"slip.JPEG", "jpeg", true},
		{"photo.GIF", "gif", true},
		{"slip.pdf", "pdf", false},
		{"slip.png.exe", "exe", false},
		{"noextension", "", false},
		{"trailingdot.", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		ext, ok := AllowedExtension(c.name)
		if ok != c.ok {
			t.Errorf("AllowedExtension(%q) ok = %v, want %v", c.name, ok, c.ok)
		}
		if ok && ext != c.ext {
			t.Errorf("AllowedExtension(%q) ext = %q, want %q", c.name, ext, c.ext)
		}
	}
}

func TestSlipName(t *testing.T) {
	got := SlipName(42, 1700000000, "jpg")
	if got != "slip_42_1700000000.jpg" {
		t.Errorf("SlipName = %q", got)
	}
	// Generated names never contain path separators regardless of input.
	if strings.ContainsAny(got, `/\`) {
		t.Errorf("SlipName contains a path separator: %q", got)
	}
}

func TestSaveWritesFileAndReturnsAccessPath(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSlipStore(dir)
	if err != nil {
		t.Fatalf("NewSlipStore: %v", err)
	}
	path, err := store.Save(strings.NewReader("fake image bytes"), "Transfer Receipt.PNG", 7, 1700000001)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	// t.TempDir is absolute, so the access path must equal the dir with
	// a single leading slash, never a doubled one.
	want := "/" + strings.TrimPrefix(filepath.ToSlash(dir), "/") + "/slip_7_1700000001.png"
	if path != want {
		t.Errorf("access path = %q, want %q", path, want)
	}
	if strings.HasPrefix(path, "//") {
		t.Errorf("access path %q starts with a doubled slash", path)
	}
	data, err := os.ReadFile(filepath.Join(dir, "slip_7_1700000001.png"))
	if err != nil {
		t.Fatalf("read stored slip: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("stored content = %q", data)
	}
}

func TestAccessURLSingleLeadingSlash(t *testing.T) {
	cases := []struct {
		dir  string
		want string
	}{
		{"static/uploads", "/static/uploads/x.png"},
		{"./static/uploads", "/static/uploads/x.png"},
		{"/var/uploads", "/var/uploads/x.png"},
		{"/var/uploads/", "/var/uploads/x.png"},
	}
	for _, c := range cases {
		s := &SlipStore{dir: c.dir}
		if got := s.accessURL("x.png"); got != c.want {
			t.Errorf("accessURL with dir %q = %q, want %q", c.dir, got, c.want)
		}
	}
}

func TestSaveRejectsBadUploads(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSlipStore(dir)
	if err != nil {
		t.Fatalf("NewSlipStore: %v", err)
	}
	if _, err := store.Save(strings.NewReader("x"), "malware.exe", 1, 1); err != ErrInvalidFile {
		t.Errorf("disallowed extension: err = %v, want ErrInvalidFile", err)
	}
	if _, err := store.Save(nil, "slip.png", 1, 1); err != ErrInvalidFile {
		t.Errorf("nil reader: err = %v, want ErrInvalidFile", err)
	}
	if _, err := store.Save(strings.NewReader("x"), "   ", 1, 1); err != ErrInvalidFile {
		t.Errorf("blank name: err = %v, want ErrInvalidFile", err)
	}
	if _, err := store.Save(strings.NewReader(""), "slip.png", 1, 2); err != ErrInvalidFile {
		t.Errorf("empty content: err = %v, want ErrInvalidFile", err)
	}
	// The rejected empty upload must not leave a zero-byte file behind.
	if _, err := os.Stat(filepath.Join(dir, "slip_1_2.png")); !os.IsNotExist(err) {
		t.Errorf("empty upload left a file behind: %v", err)
	}
}
