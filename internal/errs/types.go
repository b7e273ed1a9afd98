package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// NotFoundError covers missing records: an order id with no transaction,
// or a reconciliation response that matches nothing in the snapshot.
type NotFoundError struct {
	ErrorMessage
}

// ValidationError covers input rejected before any network call.
type ValidationError struct {
	ErrorMessage
}

// UpdateInFlightError is returned when a manual status update is
// submitted while another one is still pending.
type UpdateInFlightError struct {
	ErrorMessage
}

// TransportError covers failed calls to the upstream payments gateway.
type TransportError struct {
	ErrorMessage
	Operation string
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewUpdateInFlightError() *UpdateInFlightError {
	return &UpdateInFlightError{
		ErrorMessage: ErrorMessage{Message: "a status update is already in flight"},
	}
}

func NewTransportError(operation, message string) *TransportError {
	return &TransportError{
		ErrorMessage: ErrorMessage{Message: message},
		Operation:    operation,
	}
}
