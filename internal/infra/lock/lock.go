package lock

import "errors"

// ErrTimeout is returned when the context ends before the lock is free.
var ErrTimeout = errors.New("lock: wait timed out")
