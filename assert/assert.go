package assert

import "github.com/oomph-ac/hopsim/oerror"

// IsTrue panics with a HopsimError if ok is false. It is only meant for programmer errors,
// never for conditions a running simulation can recover from.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
