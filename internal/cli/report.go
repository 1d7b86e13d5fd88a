package cli

import (
	"property-sugar/internal/diagnostic"
	"property-sugar/internal/engine"
	"property-sugar/internal/tree"
)

// FileResult is the outcome of one source file.
type FileResult struct {
	Path   string
	Unit   *tree.Unit     // nil when the file could not be parsed
	Result *engine.Result // nil when the unit failed
	Output []byte         // transformed source
	Err    error
}

// Changed returns true if the file has at least one rewrite.
func (f *FileResult) Changed() bool {
	return f.Err == nil && f.Result.Changed()
}

// Report summarizes a run.
type Report struct {
	Files       []*FileResult
	Diagnostics diagnostic.Diagnostics
}

// Changed returns the number of files with rewrites.
func (r *Report) Changed() int {
	n := 0
	for _, f := range r.Files {
		if f.Changed() {
			n++
		}
	}

	return n
}

// Failed returns the number of files that could not be processed.
func (r *Report) Failed() int {
	n := 0
	for _, f := range r.Files {
		if f.Err != nil {
			n++
		}
	}

	return n
}

// HasErrors returns true if any file failed.
func (r *Report) HasErrors() bool {
	return r.Diagnostics.HasErrors()
}
