// SPDX-License-Identifier: MIT
package matrix

import "errors"

// ErrBadShape is returned when requested dimensions are invalid (r<=0 or c<=0).
var ErrBadShape = errors.New("matrix: invalid shape")

// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
var ErrOutOfRange = errors.New("matrix: index out of range")
