package analyze

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"property-sugar/internal/common"
	"property-sugar/internal/tree"
)

// StdinPath is the path naming standard input.
const StdinPath = "-"

// StdinName is the unit filename used for standard input.
const StdinName = "<stdin>"

// DefaultExtensions are the file extensions collected from directories.
var DefaultExtensions = []string{".ts", ".tsx"}

// ErrNoFiles is returned by Collect when the paths name no source file.
var ErrNoFiles = errors.New("no source files found")

// Loader finds source files and parses them into units.
type Loader struct {
	Extensions []string  // extensions collected when walking directories
	Stdin      io.Reader // read for StdinPath
}

// NewLoader creates a Loader with the given extensions, or the defaults when
// none are given.
func NewLoader(extensions ...string) *Loader {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	return &Loader{Extensions: extensions, Stdin: os.Stdin}
}

// Collect expands paths into a sorted, de-duplicated list of files.
// Directories are walked recursively, skipping node_modules and hidden
// directories. Files named explicitly are kept whatever their extension.
func (l *Loader) Collect(paths ...string) ([]string, error) {
	seen := make(map[string]bool)

	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		if path == StdinPath {
			add(path)
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if p != path && skipDir(d.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if common.HasExt(p, l.Extensions) {
				add(p)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", path, err)
		}
	}

	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	sort.Strings(files)

	return files, nil
}

func skipDir(name string) bool {
	return name == "node_modules" || len(name) > 1 && name[0] == '.'
}

// Load reads and parses one file, or standard input for StdinPath.
func (l *Loader) Load(path string) (*tree.Unit, error) {
	var (
		src  []byte
		err  error
		name = path
	)

	if path == StdinPath {
		name = StdinName
		if l.Stdin == nil {
			return nil, errors.New("standard input is not available")
		}

		src, err = io.ReadAll(l.Stdin)
	} else {
		src, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return ParseFile(name, src)
}
