package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// Cache adapters also use it to signal a miss (absent, stale or discarded record).
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnsupportedCurrency indicates a currency code outside the supported set.
var ErrUnsupportedCurrency = errors.New("unsupported currency")
