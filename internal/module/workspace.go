package module

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Workspace abstracts the filesystem queries path resolution needs. The OS
// implementation is used by the server; tests substitute an in-memory map.
type Workspace interface {
	// FileExists reports whether path names a regular file.
	FileExists(path string) bool
	// DirExists reports whether path names a directory.
	DirExists(path string) bool
	// ReadFile returns the file's contents.
	ReadFile(path string) (string, error)
}

// PrimaryExt is the preferred source extension; SecondaryExt is the legacy
// one accepted everywhere the primary is.
const (
	PrimaryExt   = ".volki"
	SecondaryExt = ".rs"
)

// sourcePatterns enumerate module files under a source root.
var sourcePatterns = []string{
	"**/*" + PrimaryExt,
	"**/*" + SecondaryExt,
}

// OSWorkspace is a Workspace backed by the real filesystem.
type OSWorkspace struct{}

func (OSWorkspace) FileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

func (OSWorkspace) DirExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

func (OSWorkspace) ReadFile(p string) (string, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", p, err)
	}
	return string(data), nil
}

// SourceFiles lists every module file under root, sorted, with paths relative
// to root.
func SourceFiles(fsys fs.FS) ([]string, error) {
	var out []string
	for _, pattern := range sourcePatterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		out = append(out, matches...)
	}
	sort.Strings(out)
	return out, nil
}

// FindSourceRoot walks upward from dir looking for a directory named src,
// checking dir itself first (a file already inside src/ anchors there).
// Returns dir unchanged when no src directory encloses it.
func FindSourceRoot(ws Workspace, dir string) string {
	for cur := dir; ; {
		if path.Base(cur) == "src" && ws.DirExists(cur) {
			return cur
		}
		parent := path.Dir(cur)
		if parent == cur {
			return dir
		}
		cur = parent
	}
}
