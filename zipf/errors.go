package zipf

import "errors"

// ErrEmptyInput is returned when Fit is called with no proportions.
var ErrEmptyInput = errors.New("zipf: empty proportion vector")
