package layout

import (
	"errors"
	"fmt"
)

// ErrLayoutUnavailable is matched by every error returned for an index that
// has never been laid out.
var ErrLayoutUnavailable = errors.New("layout unavailable")

// UnavailableError reports a position request for an index outside the
// record store. Callers are expected to run RelayoutFromIndex with an item
// count covering Index before asking again.
type UnavailableError struct {
	Index   int
	Message string
}

func newUnavailableError(index, length int) *UnavailableError {
	return &UnavailableError{
		Index:   index,
		Message: fmt.Sprintf("no layout for index %d: %d item(s) laid out, call RelayoutFromIndex first", index, length),
	}
}

func (e *UnavailableError) Error() string {
	return e.Message
}

// Is reports whether target is ErrLayoutUnavailable.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrLayoutUnavailable
}
