package dropdown

import "fmt"

// MissingRequiredOptionError is returned by Attach when a required option is
// absent. Initialization aborts without creating any surface or attaching
// any listener to the control.
type MissingRequiredOptionError struct {
	Option string
}

func (e *MissingRequiredOptionError) Error() string {
	return fmt.Sprintf("dropdown: required option %q is missing", e.Option)
}

// InvalidOptionError reports an attempt to commit a value that is absent
// from the extracted option set. The state machine never produces one; a
// non-nil InvalidOptionError from a transition is a programming-contract
// violation by the caller, not a recoverable condition.
type InvalidOptionError struct {
	Value string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("dropdown: value %q is not in the option set", e.Value)
}
