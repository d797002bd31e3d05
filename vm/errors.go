package vm

import "errors"

// ErrInvalidConfiguration reports a non-positive frame or page count. It is
// returned before any simulation state is created.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrInvalidReference reports a referenced page number outside the virtual
// address space. The replacement algorithm never sees such a reference.
var ErrInvalidReference = errors.New("invalid page reference")
