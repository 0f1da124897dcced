package optimizations

import "errors"

var ErrNotFound = errors.New("not found")
