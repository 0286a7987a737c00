package service

import "fmt"

// ValidationError marks failures of the input-validation boundary so
// handlers can answer 400 instead of 500. The message is the first schema
// violation, surfaced verbatim to the caller.
type ValidationError struct {
	msg string
}

func (e ValidationError) Error() string {
	return e.msg
}

func validationf(format string, args ...interface{}) error {
	return ValidationError{msg: fmt.Sprintf(format, args...)}
}
