package services

import (
	"net/http"

	"github.com/yashrajoria/checkout-demo/providers"
)

// ErrorKind classifies checkout failures for callers that need to branch on
// the cause rather than the message.
type ErrorKind string

const (
	// KindSelection covers a missing or unknown catalog id. Recoverable:
	// the user picks again.
	KindSelection ErrorKind = "selection"

	// KindGateway covers a failed gateway call, create or retrieve. The
	// gateway's message is surfaced once and the call is not retried.
	KindGateway ErrorKind = "gateway"

	// KindMissingReference covers a return redirect without an intent id.
	// Distinct from a gateway failure: the gateway is never contacted.
	KindMissingReference ErrorKind = "missing_reference"
)

// User-facing messages for the locally detected conditions.
const (
	MsgNoItemSelected = "No item selected"
	MsgIntentNotFound = "PaymentIntent not found"
)

// ServiceError is a typed error carrying an HTTP status code and a kind.
type ServiceError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *ServiceError) Error() string { return e.Message }

// Unwrap exposes the underlying cause, if any.
func (e *ServiceError) Unwrap() error { return e.Err }

func selectionError() *ServiceError {
	return &ServiceError{
		Kind:       KindSelection,
		StatusCode: http.StatusBadRequest,
		Message:    MsgNoItemSelected,
	}
}

func gatewayError(err error) *ServiceError {
	return &ServiceError{
		Kind:       KindGateway,
		StatusCode: http.StatusInternalServerError,
		Message:    providers.GatewayMessage(err),
		Err:        err,
	}
}

func missingReferenceError() *ServiceError {
	return &ServiceError{
		Kind:       KindMissingReference,
		StatusCode: http.StatusNotFound,
		Message:    MsgIntentNotFound,
	}
}
