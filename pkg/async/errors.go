package async

import "errors"

// ErrNoFutures is returned when a coordination helper receives no futures.
var ErrNoFutures = errors.New("async: no futures provided")
