package a1art

import "fmt"

// RejectedError means A1.art explicitly declined the request: a non-200
// generation response, a non-zero envelope code, or a structurally incomplete
// success body. The message is the provider's localized error text when one
// was supplied. Maps to a 400-class response at the API boundary.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return "a1.art rejected request: " + e.Message
}

// UnavailableError means the request never produced a usable provider
// response: transport failure, timeout, or a body that is not valid JSON.
// Maps to a 500-class response at the API boundary.
type UnavailableError struct {
	Op  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("a1.art %s unavailable: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}
