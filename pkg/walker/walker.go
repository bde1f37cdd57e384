// Package walker expands compiled glob patterns against a directory
// tree. The matching itself stays pure text work in the glob package;
// this package only gathers the candidate paths.
package walker

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/nekrich/glob/pkg/glob"
)

// Entry is one child location produced by listing a directory.
type Entry struct {
	// Path is slash-separated and relative to the listing root.
	Path string
	Name string
	Dir  bool
	// Info is only set when listing with metadata.
	Info fs.FileInfo
}

// ListOptions control List.
type ListOptions struct {
	// IncludeHidden keeps dot-entries in the result.
	IncludeHidden bool
	// WithInfo prefetches metadata for every entry.
	WithInfo bool
}

// List returns the direct children of dir. Filesystem failures are
// returned to the caller untouched.
func List(dir string, opts ListOptions) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		name := de.Name()
		if !opts.IncludeHidden && strings.HasPrefix(name, ".") {
			continue
		}
		e := Entry{Path: name, Name: name, Dir: de.IsDir()}
		if opts.WithInfo {
			info, err := de.Info()
			if err != nil {
				return nil, err
			}
			e.Info = info
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Walker expands patterns against a directory tree.
type Walker struct {
	// IncludeHidden walks into and reports dot-entries. A pattern
	// compiled with RequireLiteralLeadingPeriod still has the final
	// say on whether they match.
	IncludeHidden bool

	// OnError is consulted when a subdirectory cannot be listed.
	// Returning false aborts the walk with that error; a nil handler
	// skips the subtree silently. Failure to list the root always
	// aborts.
	OnError func(dir string, err error) bool
}

// Glob walks the tree under root and returns every entry whose
// slash-relative path matches p, sorted by path.
func (w *Walker) Glob(root string, p *glob.Pattern) ([]Entry, error) {
	var matches []Entry
	if err := w.walk(root, "", p, &matches); err != nil {
		return nil, err
	}
	slices.SortFunc(matches, func(a, b Entry) bool { return a.Path < b.Path })
	return matches, nil
}

func (w *Walker) walk(dir, rel string, p *glob.Pattern, out *[]Entry) error {
	entries, err := List(dir, ListOptions{IncludeHidden: w.IncludeHidden})
	if err != nil {
		if rel == "" {
			return err
		}
		if w.OnError != nil && !w.OnError(dir, err) {
			return err
		}
		return nil
	}
	for _, e := range entries {
		childRel := e.Name
		if rel != "" {
			childRel = rel + "/" + e.Name
		}
		e.Path = childRel
		if p.Match(childRel) {
			*out = append(*out, e)
		}
		if e.Dir {
			if err := w.walk(filepath.Join(dir, e.Name), childRel, p, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// Glob is a convenience that compiles pattern with the default path
// options and expands it under root with a zero Walker.
func Glob(root, pattern string) ([]Entry, error) {
	p, err := glob.Compile(pattern, glob.DefaultOptions())
	if err != nil {
		return nil, err
	}
	w := &Walker{}
	return w.Glob(root, p)
}
