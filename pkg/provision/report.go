package provision

import "errors"

// Outcome is the result of provisioning a single file.
type Outcome int

const (
	Installed Outcome = iota
	Updated
	Preserved
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Installed:
		return "Installed"
	case Updated:
		return "Updated"
	case Preserved:
		return "Preserved"
	case Failed:
		return "Failed"
	}
	return "Unknown"
}

// Entry records what happened to one file.
type Entry struct {
	Name    string
	Path    string
	Outcome Outcome
	// Detail is a short note; for a missing source it is the source path.
	Detail string
	Err    error
}

// Kind returns the error kind for failed entries.
func (e Entry) Kind() string {
	return Kind(e.Err)
}

// Report is the ordered result of a run.
type Report struct {
	Entries []Entry

	// DirectoryCreated is set when the run created the workflows directory.
	DirectoryCreated bool
}

func (r *Report) add(e Entry) {
	r.Entries = append(r.Entries, e)
}

// Failures returns the failed entries in order.
func (r *Report) Failures() []Entry {
	var failed []Entry
	for _, e := range r.Entries {
		if e.Outcome == Failed {
			failed = append(failed, e)
		}
	}
	return failed
}

// OK reports whether every file was provisioned.
func (r *Report) OK() bool {
	return len(r.Failures()) == 0
}

// Aborted reports whether the run stopped before touching any file.
func (r *Report) Aborted() bool {
	return len(r.Entries) == 1 && errors.Is(r.Entries[0].Err, ErrMissingPackageDirectory)
}
