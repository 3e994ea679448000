// Package store provides the document tree storage layer for the guide.
// It exposes a small read/write/list surface over a backing filesystem plus
// a staged commit: writes accumulate in memory and become durable together,
// one logical change-set per accepted proposal, so a crash mid-pass leaves
// at most one incomplete item.
package store

import (
	"os"
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/guidemap/guidemap/pkg/constants"
	"github.com/guidemap/guidemap/pkg/errors"
)

// Info describes one immediate child of a tree directory.
type Info struct {
	Name string
	Dir  bool
}

// Tree is the versioned document tree the reconciler mutates. All paths are
// slash-separated and relative to the tree root.
//
// Read and List observe staged writes, so a pass sees its own pending
// mutations when regenerating indexes before the commit lands.
type Tree interface {
	// Read returns the content of the document at path and whether it exists.
	Read(p string) ([]byte, bool, error)

	// Write stages content for the document at path. Parent directories are
	// created as needed at commit time.
	Write(p string, content []byte) error

	// List returns the immediate children of a directory, sorted by name.
	// A missing directory lists as empty, not as an error.
	List(dir string) ([]Info, error)

	// Commit makes all staged writes durable together and clears the stage.
	Commit() error

	// Discard drops all staged writes.
	Discard()
}

// tree implements Tree over an afero filesystem.
type tree struct {
	fs     afero.Fs
	root   string
	staged map[string][]byte
}

// New creates a Tree rooted at root on the given filesystem.
func New(fs afero.Fs, root string) Tree {
	return &tree{
		fs:     fs,
		root:   root,
		staged: make(map[string][]byte),
	}
}

// NewOS creates a Tree rooted at root on the host filesystem.
func NewOS(root string) Tree {
	return New(afero.NewOsFs(), root)
}

func (t *tree) abs(p string) string {
	return path.Join(t.root, path.Clean(p))
}

// Read returns staged content first, then falls back to the filesystem.
func (t *tree) Read(p string) ([]byte, bool, error) {
	p = path.Clean(p)
	if content, ok := t.staged[p]; ok {
		return content, true, nil
	}

	content, err := afero.ReadFile(t.fs, t.abs(p))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.WrapIO("read", p, err)
	}
	return content, true, nil
}

// Write stages content for later commit.
func (t *tree) Write(p string, content []byte) error {
	t.staged[path.Clean(p)] = content
	return nil
}

// List merges filesystem children with staged paths under dir.
func (t *tree) List(dir string) ([]Info, error) {
	dir = path.Clean(dir)

	children := map[string]Info{}

	fis, err := afero.ReadDir(t.fs, t.abs(dir))
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.WrapIO("list", dir, err)
	}
	for _, fi := range fis {
		children[fi.Name()] = Info{Name: fi.Name(), Dir: fi.IsDir()}
	}

	prefix := dir + "/"
	if dir == "." {
		prefix = ""
	}
	for staged := range t.staged {
		if !strings.HasPrefix(staged, prefix) {
			continue
		}
		rest := strings.TrimPrefix(staged, prefix)
		name, _, nested := strings.Cut(rest, "/")
		children[name] = Info{Name: name, Dir: nested}
	}

	out := make([]Info, 0, len(children))
	for _, info := range children {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Commit writes every staged document, creating parent directories, then
// clears the stage. Each document leaves the stage as it lands, so after a
// partial failure the stage holds only the unwritten remainder and a retry
// resumes where it stopped.
func (t *tree) Commit() error {
	for p, content := range t.staged {
		full := t.abs(p)
		if err := t.fs.MkdirAll(path.Dir(full), constants.DirPermissions); err != nil {
			return errors.WrapIO("commit", p, err)
		}
		if err := afero.WriteFile(t.fs, full, content, constants.FilePermissions); err != nil {
			return errors.WrapIO("commit", p, err)
		}
		delete(t.staged, p)
	}
	return nil
}

// Discard drops all staged writes.
func (t *tree) Discard() {
	t.staged = make(map[string][]byte)
}
