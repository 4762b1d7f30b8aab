package render

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyResult means a list with no resources was given to the table path.
	ErrEmptyResult = errors.New("result list is empty")
	// ErrMixedTypes means a list holds resources of more than one type.
	ErrMixedTypes = errors.New("result list mixes resource types")
	// ErrUnsupportedResult means the value is neither a resource nor a list of resources.
	ErrUnsupportedResult = errors.New("unsupported result type")
	// ErrRaggedMatrix means the rows of a matrix differ in length.
	ErrRaggedMatrix = errors.New("matrix rows differ in length")
	// ErrNoDataRows means a matrix has a header but nothing to show under it.
	ErrNoDataRows = errors.New("matrix has no data rows")
)

// ShapeError reports a result that violates the rendering contract.
type ShapeError struct {
	// Err is one of the sentinel errors above.
	Err error
	// Detail describes the offending input.
	Detail string
}

func (e *ShapeError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("cannot render result: %v", e.Err)
	}
	return fmt.Sprintf("cannot render result: %v: %s", e.Err, e.Detail)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

func shapeError(err error, detailFmt string, args ...any) *ShapeError {
	return &ShapeError{Err: err, Detail: fmt.Sprintf(detailFmt, args...)}
}
