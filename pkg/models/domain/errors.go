package domain

import "fmt"

// ValidationError marks a client fault: an unknown report identifier or a
// malformed parameter. Handlers map it to a 4xx status; anything else that
// escapes a service is treated as an execution fault.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
