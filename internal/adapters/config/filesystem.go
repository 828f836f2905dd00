package config

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem reads configuration files.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS reads from the host filesystem.
type OSFS struct{}

// NewOSFS creates a new OSFS.
func NewOSFS() OSFS {
	return OSFS{}
}

// ReadFile reads the file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is the user's config file
	return os.ReadFile(path)
}

// RootedFS serves absolute paths below Root from an fs.FS such as
// fstest.MapFS. Paths outside Root do not exist.
type RootedFS struct {
	Root string
	FS   fs.FS
}

// NewRootedFS creates a RootedFS mounting fsys at root.
func NewRootedFS(root string, fsys fs.FS) RootedFS {
	return RootedFS{Root: root, FS: fsys}
}

// ReadFile reads path relative to Root.
func (r RootedFS) ReadFile(path string) ([]byte, error) {
	rel, err := filepath.Rel(r.Root, path)
	if err != nil || !filepath.IsLocal(rel) {
		return nil, &fs.PathError{Op: "read", Path: path, Err: fs.ErrNotExist}
	}
	return fs.ReadFile(r.FS, filepath.ToSlash(rel))
}
