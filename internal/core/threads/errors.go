package threads

import "errors"

// ErrThreadNotFound is returned when a thread lookup finds no matching
// record. Subscribe and unsubscribe against a missing thread fail with this
// error; everything against an existing thread is idempotent.
var ErrThreadNotFound = errors.New("thread not found")
