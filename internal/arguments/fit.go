package arguments

import "github.com/footprint-tools/repl/internal/usage"

// Failure pairs a spec with the value it rejected.
type Failure struct {
	Spec  Spec
	Value string
}

// String renders the failure as shown to the user.
func (f Failure) String() string {
	return usage.InvalidValue(f.Value, f.Spec.String()).Message
}

// FitResult is the outcome of Binder.Fits.
type FitResult struct {
	OK       bool
	Kind     usage.ErrorKind
	Reason   string
	Failures []Failure
}

func structural(e *usage.Error) FitResult {
	return FitResult{Kind: e.Kind, Reason: e.Message}
}

// Err returns nil for a successful fit, or the usage error describing it.
func (r FitResult) Err() error {
	if r.OK {
		return nil
	}
	return &usage.Error{Kind: r.Kind, Message: r.Reason}
}
