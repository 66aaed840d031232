// Package walk resolves command line paths into the files to sort.
package walk

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	".git":             true,
	".hg":              true,
	".svn":             true,
	"node_modules":     true,
	"bower_components": true,
}

// skipFiles are lock files and manifests that never hold class attributes
// worth sorting.
var skipFiles = map[string]bool{
	"package-lock.json": true,
	"yarn.lock":         true,
	"pnpm-lock.yaml":    true,
	"bun.lockb":         true,
	"Cargo.lock":        true,
	"go.sum":            true,
}

// Options controls which files are collected.
type Options struct {
	// Ignored holds gitignore-style patterns, matched relative to each root.
	Ignored []string
	// NoGitignore disables reading .gitignore in each root directory.
	NoGitignore bool
	// Hidden includes dot files and dot directories.
	Hidden bool
}

// File is a file to process.
type File struct {
	// Path is the path used to read and write the file.
	Path string
	// Rel is the path relative to the root it was found under, used for
	// display. For a file named directly it equals Path.
	Rel string
}

// Collect finds the files named by paths.
// Supports:
//   - Direct file paths: "index.html"
//   - Directory paths, walked recursively: "./src"
//   - Recursive pattern: "./..."
//
// The result is sorted by path and holds no duplicates.
func Collect(paths []string, opts Options) ([]File, error) {
	seen := make(map[string]bool)
	var files []File

	add := func(f File) {
		if seen[f.Path] {
			return
		}
		seen[f.Path] = true
		files = append(files, f)
	}

	for _, path := range paths {
		// Handle ./... recursive pattern
		if strings.HasSuffix(path, "/...") || path == "..." {
			path = strings.TrimSuffix(strings.TrimSuffix(path, "..."), "/")
			if path == "" {
				path = "."
			}
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if !info.IsDir() {
			// A file named directly is always processed, even if ignored.
			add(File{Path: path, Rel: path})
			continue
		}

		found, err := walkDir(path, opts)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}

	slices.SortFunc(files, func(a, b File) int {
		return strings.Compare(a.Path, b.Path)
	})
	return files, nil
}

// walkDir collects every regular file below root that is not ignored.
func walkDir(root string, opts Options) ([]File, error) {
	matcher, err := newMatcher(root, opts)
	if err != nil {
		return nil, err
	}

	var files []File
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		name := d.Name()

		if d.IsDir() {
			if skipDirs[name] || (!opts.Hidden && isHidden(name)) || matcher.ignored(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if skipFiles[name] || (!opts.Hidden && isHidden(name)) || matcher.ignored(rel, false) {
			return nil
		}

		files = append(files, File{Path: p, Rel: rel})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return files, nil
}

// matcher applies .gitignore and user supplied ignore patterns.
type matcher struct {
	rules []*ignore.GitIgnore
}

func newMatcher(root string, opts Options) (*matcher, error) {
	m := &matcher{}

	if !opts.NoGitignore {
		gitignore := filepath.Join(root, ".gitignore")
		rules, err := ignore.CompileIgnoreFile(gitignore)
		switch {
		case err == nil:
			m.rules = append(m.rules, rules)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("reading %s: %w", gitignore, err)
		}
	}

	if len(opts.Ignored) > 0 {
		m.rules = append(m.rules, ignore.CompileIgnoreLines(opts.Ignored...))
	}

	return m, nil
}

// ignored reports whether the slash separated path relative to the root
// is excluded.
func (m *matcher) ignored(rel string, dir bool) bool {
	for _, rules := range m.rules {
		if rules.MatchesPath(rel) {
			return true
		}
		if dir && rules.MatchesPath(rel+"/") {
			return true
		}
	}
	return false
}

func isHidden(name string) bool {
	return len(name) > 1 && name[0] == '.'
}
