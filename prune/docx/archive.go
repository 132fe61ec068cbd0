// Package docx reads and rewrites the ZIP container and main content
// document of a DOCX file.
package docx

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DocumentPath is the conventional location of the main content document
// inside the package.
const DocumentPath = "word/document.xml"

var (
	// ErrNotFound means the input path does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrInvalidFormat means the input is not a DOCX package.
	ErrInvalidFormat = errors.New("not a valid DOCX file")

	// ErrParseFailure means the content document is not well-formed XML.
	ErrParseFailure = errors.New("cannot parse content document")

	// ErrWriteFailure means a backup or repack write failed.
	ErrWriteFailure = errors.New("write failed")
)

// Archive is a read handle on a DOCX package.
type Archive struct {
	path      string
	zipReader *zip.ReadCloser
	files     map[string]*zip.File
}

// OpenArchive validates and opens a DOCX package. The path must exist,
// carry the .docx extension, and contain word/document.xml.
func OpenArchive(path string) (*Archive, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if info.IsDir() || !strings.EqualFold(filepath.Ext(path), ".docx") {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, path)
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening ZIP archive: %v", ErrInvalidFormat, err)
	}

	a := &Archive{
		path:      path,
		zipReader: r,
		files:     make(map[string]*zip.File),
	}

	// Index files by name
	for _, f := range r.File {
		a.files[f.Name] = f
	}

	if _, ok := a.files[DocumentPath]; !ok {
		r.Close()
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidFormat, DocumentPath)
	}

	return a, nil
}

// Path returns the package path the archive was opened from.
func (a *Archive) Path() string { return a.path }

// Close releases the underlying ZIP reader.
func (a *Archive) Close() error { return a.zipReader.Close() }

// ReadFile reads a raw file from the ZIP archive.
func (a *Archive) ReadFile(filename string) ([]byte, error) {
	f, ok := a.files[filename]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", filename)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// ExtractTo unpacks every entry into dir, preserving relative paths and
// file bytes. Entries whose paths would escape dir are rejected.
func (a *Archive) ExtractTo(dir string) error {
	for _, f := range a.zipReader.File {
		if err := extractEntry(f, dir); err != nil {
			return fmt.Errorf("extracting %s: %w", f.Name, err)
		}
	}
	return nil
}

func extractEntry(f *zip.File, dir string) error {
	dest := filepath.Join(dir, filepath.FromSlash(f.Name))
	rel, err := filepath.Rel(dir, dest)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("entry path escapes extraction directory")
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(dest, 0755)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// RepackDir packs every file under dir into a new DOCX at outPath, with
// paths relative to dir and deflate compression. The result is a fresh
// archive: untouched members are re-stored, not byte-copied, but decode
// to the same bytes.
func RepackDir(dir, outPath string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}

	w := zip.NewWriter(out)
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		fw, err := w.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()
		_, err = io.Copy(fw, in)
		return err
	})
	if walkErr != nil {
		w.Close()
		out.Close()
		return fmt.Errorf("%w: repacking %s: %v", ErrWriteFailure, dir, walkErr)
	}

	if err := w.Close(); err != nil {
		out.Close()
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	return nil
}

// CopyFile writes a byte-identical copy of src at dst, used for the
// pre-overwrite backup.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	return nil
}
