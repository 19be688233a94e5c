package provision

import "errors"

// Fatal errors stop the run, or the managed copy phase, early.
var (
	// ErrMissingPackageDirectory indicates the Composer package is not installed
	// in the vendor directory.
	ErrMissingPackageDirectory = errors.New("package directory not found")

	// ErrDirectoryCreate indicates the workflows directory could not be created.
	ErrDirectoryCreate = errors.New("could not create directory")
)

// Per-file errors are recorded and the run continues.
var (
	// ErrSourceFileMissing indicates a workflow template is absent from the package.
	ErrSourceFileMissing = errors.New("source file not found")

	// ErrCopyFailure indicates a workflow template could not be copied.
	ErrCopyFailure = errors.New("failed to copy")

	// ErrWriteFailure indicates an auxiliary file could not be created.
	ErrWriteFailure = errors.New("failed to create")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrMissingPackageDirectory, "MissingPackageDirectory"},
	{ErrDirectoryCreate, "DirectoryCreateFailure"},
	{ErrSourceFileMissing, "SourceFileMissing"},
	{ErrCopyFailure, "CopyFailure"},
	{ErrWriteFailure, "WriteFailure"},
}

// Kind returns the error kind name for err, or "" if err is not one of the
// package sentinels.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}
