package oerror

import "fmt"

// HopsimError is an error raised by hopsim when a configuration, scenario or collaborator
// is not usable.
type HopsimError struct {
	Err string
}

// New formats a new HopsimError.
func New(format string, args ...any) *HopsimError {
	if len(args) == 0 {
		return &HopsimError{Err: format}
	}
	return &HopsimError{Err: fmt.Sprintf(format, args...)}
}

func (e *HopsimError) Error() string {
	return e.Err
}
