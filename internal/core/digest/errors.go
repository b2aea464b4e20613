package digest

import "fmt"

// DeliveryFailure records a per-recipient send failure. Failures are
// collected on the run report instead of aborting the batch, so one bad
// address can't suppress digests to the rest of the subscriber set.
type DeliveryFailure struct {
	Err      error
	Email    string
	ThreadID int64
}

func (f *DeliveryFailure) Error() string {
	return fmt.Sprintf("digest delivery to %s for thread %d failed: %v", f.Email, f.ThreadID, f.Err)
}

func (f *DeliveryFailure) Unwrap() error {
	return f.Err
}
