package gauss

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular matches any *SingularMatrixError.
	ErrSingular = errors.New("gauss: singular matrix")

	// ErrNilMatrix is returned when Solve or Residual receives a nil system.
	ErrNilMatrix = errors.New("gauss: nil matrix")

	// ErrDimensionMismatch indicates a solution vector of the wrong length.
	ErrDimensionMismatch = errors.New("gauss: dimension mismatch")
)

// SingularMatrixError reports the 1-indexed diagonal position whose pivot
// was (numerically) zero.
type SingularMatrixError struct {
	Row, Col int
}

func (e *SingularMatrixError) Error() string {
	return fmt.Sprintf("gauss: singular system: zero pivot at position (%d,%d)", e.Row, e.Col)
}

// Is lets errors.Is(err, ErrSingular) match any *SingularMatrixError.
func (e *SingularMatrixError) Is(target error) bool { return target == ErrSingular }
