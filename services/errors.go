package services

import "errors"

// Business failures returned by the service layer. Anything else coming out
// of a service call is a backend failure (store unreachable, decode error)
// and gets wrapped rather than replaced, so callers can tell the two apart
// with errors.Is.
var (
	ErrServiceNotFound   = errors.New("service is not in the catalog for this category")
	ErrUnknownCategory   = errors.New("unknown service category")
	ErrInvalidItem       = errors.New("item needs a selected service and a quantity of at least 1")
	ErrIndexOutOfRange   = errors.New("no item at that position")
	ErrIncompleteOrder   = errors.New("order needs customer name, address, phone and at least one item")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("order status does not allow this transition")
	ErrPartialArchival   = errors.New("order was copied to history but the live record could not be deleted")
)
