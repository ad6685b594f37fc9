package cli

import "fmt"

// ExitError ends a command with a non-zero exit code after the command has
// already printed its own failure output
type ExitError struct {
	Code int
	Err  error // cause, nil when the failure was only a verdict
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// exitCode reports err as an already printed failure with exit code 1
func exitCode(err error) *ExitError {
	return &ExitError{Code: 1, Err: err}
}
