package svgpath

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a polygon index does not address an
// existing point.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrNotCallable is returned when a nil callback is passed where one is
// required.
var ErrNotCallable = errors.New("callback is not callable")

// TypeError reports a value that is not an instance of the expected type.
type TypeError struct {
	Expected string
	Got      interface{}
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("expected instance of %s, got %T", e.Expected, e.Got)
}

func typeError(expected string, got interface{}) error {
	return &TypeError{Expected: expected, Got: got}
}
