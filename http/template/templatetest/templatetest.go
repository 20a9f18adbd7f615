// Package templatetest holds views in memory so tests rendering them
// need no testdata/ directory.
package templatetest

import (
	"bytes"
	"io/fs"
	"path"
	"time"

	"github.com/xy-planning-network/respond/http/template"
)

// NewParser constructs a *template.Parse reading only the files given.
func NewParser(files ...MockFile) *template.Parse {
	return template.NewParser(template.WithFS(NewMockFS(files...)))
}

// A MockFile is a view held in memory under its full path, e.g. "views/profile.tmpl".
type MockFile struct {
	name string
	data []byte
}

func NewMockFile(name string, data []byte) MockFile { return MockFile{name: name, data: data} }

// A MockFS serves MockFiles by their full path.
//
// MockFS implements fs.GlobFS by matching patterns against full paths.
type MockFS []MockFile

func NewMockFS(files ...MockFile) MockFS { return append(MockFS{}, files...) }

// Open returns a fresh reader over the file at name.
func (mfs MockFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}

	for _, f := range mfs {
		if f.name == name {
			return &openFile{info: fileInfo(f), r: bytes.NewReader(f.data)}, nil
		}
	}

	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

func (mfs MockFS) Glob(pattern string) ([]string, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, err
	}

	var matches []string
	for _, f := range mfs {
		if ok, _ := path.Match(pattern, f.name); ok {
			matches = append(matches, f.name)
		}
	}

	return matches, nil
}

type openFile struct {
	info fileInfo
	r    *bytes.Reader
}

func (f *openFile) Close() error               { return nil }
func (f *openFile) Read(p []byte) (int, error) { return f.r.Read(p) }
func (f *openFile) Stat() (fs.FileInfo, error) { return f.info, nil }

type fileInfo MockFile

func (fi fileInfo) IsDir() bool        { return false }
func (fi fileInfo) ModTime() time.Time { return time.Time{} }
func (fi fileInfo) Mode() fs.FileMode  { return 0o444 }
func (fi fileInfo) Name() string       { return path.Base(fi.name) }
func (fi fileInfo) Size() int64        { return int64(len(fi.data)) }
func (fi fileInfo) Sys() any           { return nil }
