// Package must contains helpers for startup code that cannot continue after an error.
package must

// OK panics if err is not nil.
func OK(err error) {
	if err != nil {
		panic(err)
	}
}

// Any returns ret, or panics if err is not nil.
//
//nolint:ireturn // generic passthrough
func Any[T any](ret T, err error) T {
	OK(err)

	return ret
}
