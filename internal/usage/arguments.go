package usage

import "fmt"

// TooManyArguments is returned when more positional arguments were bound
// than the command declares.
func TooManyArguments() *Error {
	return &Error{
		Kind:    ErrTooManyArguments,
		Message: "Too many mandatory parameters provided",
	}
}

// MissingArguments is returned when fewer positional arguments were bound
// than the command declares.
func MissingArguments() *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: "Missing mandatory parameters",
	}
}

// InvalidValues is returned when one or more bound values were rejected by
// their validators.
func InvalidValues(count int) *Error {
	msg := "Wrong arguments values"
	if count == 1 {
		msg = "Wrong argument value"
	}
	return &Error{
		Kind:    ErrInvalidValue,
		Message: msg,
	}
}

// InvalidValue describes one rejected value.
func InvalidValue(value, argument string) *Error {
	return &Error{
		Kind:    ErrInvalidValue,
		Message: fmt.Sprintf("%s is not valid for argument %s", value, argument),
	}
}
