package topo

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidGeometry  = errors.New("invalid geometry")
	ErrAmbiguousNodeKey = errors.New("ambiguous node key")
)

// RecordError describes an input record that was skipped.
type RecordError struct {
	Kind  string // "line" or "node"
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Kind, e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Report collects the non-fatal problems of a build.
type Report struct {
	Skipped   []*RecordError
	Ambiguous []string
}

func (r *Report) skip(kind string, index int, err error) *RecordError {
	rec := &RecordError{Kind: kind, Index: index, Err: err}
	r.Skipped = append(r.Skipped, rec)
	return rec
}
