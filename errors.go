package vecn

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is matched by every error reporting an index outside
	// the bounds of a vector.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// IndexError indicates an access at an index outside [0, Len).
//
// Checked accessors return it; unchecked accessors panic with it.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range: %d not in [0, %d)", e.Index, e.Len)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }
