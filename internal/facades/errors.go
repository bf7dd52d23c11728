package facades

// BackendError carries a human readable message returned by an external
// backend. Handlers surface the message to the client verbatim.
type BackendError struct {
	Message string
}

func (e *BackendError) Error() string {
	return e.Message
}

func backendErr(message string) *BackendError {
	if message == "" {
		message = "Неизвестная ошибка"
	}
	return &BackendError{Message: message}
}
