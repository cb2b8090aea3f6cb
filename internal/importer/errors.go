package importer

import "errors"

// ErrImportFormat is matched (errors.Is) by every import rejection: the
// upload held no tabular data the importer could extract records from.
var ErrImportFormat = errors.New("unrecognized import format")

type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return "import: " + e.Reason + ": " + e.Err.Error()
	}
	return "import: " + e.Reason
}

func (e *FormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrImportFormat}
	}
	return []error{ErrImportFormat, e.Err}
}

func formatErr(reason string, err error) error {
	return &FormatError{Reason: reason, Err: err}
}
