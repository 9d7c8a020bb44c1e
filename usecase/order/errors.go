package order

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBatchInProgress is returned when an upload for the same year-month
// is already being ingested by this process.
var ErrBatchInProgress = errors.New("an upload for this year-month is already in progress")

// DateFormatError reports a date value the normalizer could not reduce
// to a calendar date.
type DateFormatError struct {
	Value string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("unparseable date value %q", e.Value)
}

// ParseError is batch-scoped: the parser service produced no usable
// rows, so the whole upload is rejected before validation begins.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("order file could not be parsed: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// CommitError is batch-scoped: the store rejected the transaction and
// every staged row was rolled back.
type CommitError struct {
	Err error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("order batch commit failed: %v", e.Err)
}

func (e *CommitError) Unwrap() error { return e.Err }

// fieldError is row-scoped: one row failed validation. The message is
// user-facing and cites the 1-based row position in the uploaded file.
// It never escapes the batch loop.
type fieldError struct {
	rowIndex int
	reasons  []string
}

func (e *fieldError) Error() string {
	return fmt.Sprintf("%d行目: %s", e.rowIndex, strings.Join(e.reasons, "、"))
}
