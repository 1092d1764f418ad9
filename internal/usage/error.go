package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrTooManyArguments
	ErrMissingArgument
	ErrInvalidValue
	ErrUnknownCommand
)

func (k ErrorKind) String() string {
	switch k {
	case ErrTooManyArguments:
		return "too many arguments"
	case ErrMissingArgument:
		return "missing argument"
	case ErrInvalidValue:
		return "invalid value"
	case ErrUnknownCommand:
		return "unknown command"
	default:
		return "unknown"
	}
}

// Error represents a user-facing usage error with semantic type information.
// None of these are fatal: the dispatcher reports them and keeps reading.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is a usage error of the same kind, so callers
// can match with errors.Is(err, &usage.Error{Kind: usage.ErrMissingArgument}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
