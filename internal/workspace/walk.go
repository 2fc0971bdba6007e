// Package workspace hosts the synchronizer over files on disk: it finds
// candidate files, opens them as editor documents, and writes them back.
package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/getlawrence/insert-filename/internal/filecomment"
)

// Workspace is a root directory; it implements editor.Workspace.
type Workspace struct {
	Root string
}

// New resolves root to an absolute path.
func New(root string) (*Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace root: %w", err)
	}
	return &Workspace{Root: abs}, nil
}

// AsRelativePath returns path relative to the root with forward slashes.
// Paths outside the root are returned unchanged.
func (w *Workspace) AsRelativePath(path string) string {
	rel, err := filepath.Rel(w.Root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}

// WalkOptions filters the files Walk returns.
type WalkOptions struct {
	// Exclude names directories or files to skip anywhere in the tree, or
	// slash separated paths relative to the root.
	Exclude []string
	// Extensions, when non-empty, restricts results to these extensions.
	Extensions []string
	// MaxFileBytes skips larger files; 0 means no limit.
	MaxFileBytes int64
}

// File is one candidate document.
type File struct {
	AbsPath string
	RelPath string
	Size    int64
}

// Walk collects regular files under the given paths (files or directories),
// sorted by relative path. Symlinks are not followed.
func (w *Workspace) Walk(ctx context.Context, paths []string, opts WalkOptions) ([]File, error) {
	if len(paths) == 0 {
		paths = []string{w.Root}
	}
	exts := make(map[string]bool, len(opts.Extensions))
	for _, e := range opts.Extensions {
		exts[e] = true
	}

	seen := make(map[string]bool)
	var files []File
	add := func(abs string, info fs.FileInfo) {
		if seen[abs] || !info.Mode().IsRegular() {
			return
		}
		if opts.MaxFileBytes > 0 && info.Size() > opts.MaxFileBytes {
			return
		}
		if len(exts) > 0 && !exts[filecomment.Extension(abs)] {
			return
		}
		seen[abs] = true
		files = append(files, File{AbsPath: abs, RelPath: w.AsRelativePath(abs), Size: info.Size()})
	}

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		info, err := os.Lstat(abs)
		if err != nil {
			return nil, fmt.Errorf("path does not exist: %s", abs)
		}
		if !info.IsDir() {
			// Explicit files are taken as given, excludes only apply to walks.
			add(abs, info)
			continue
		}

		err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if path != abs && w.excluded(path, d.Name(), opts.Exclude) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			add(path, info)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// excluded matches either the entry name or its root-relative path.
func (w *Workspace) excluded(path, name string, exclude []string) bool {
	rel := w.AsRelativePath(path)
	for _, ex := range exclude {
		ex = strings.TrimSuffix(filepath.ToSlash(ex), "/")
		if ex == "" {
			continue
		}
		if name == ex || rel == ex {
			return true
		}
		if ok, _ := filepath.Match(ex, name); ok {
			return true
		}
	}
	return false
}
