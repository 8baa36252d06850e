package brick

import "fmt"

// The error kinds below are the only ones the ledger and the codec produce.
// Callers are expected to match them with errors.As: validation and
// not-found failures are local (re-prompt or no-op), a deserialization
// failure means the store needs attention before mutating it.

// ValidationError reports malformed or missing input at entity creation or
// update. The mutation was not applied.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation referencing an id absent from the
// ledger.
type NotFoundError struct {
	Kind string // "item" or "expense"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// InvalidStateError reports a lifecycle violation, such as selling an item
// that is not available.
type InvalidStateError struct {
	Kind   string
	ID     string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Kind, e.ID, e.Reason)
}

// DeserializationError reports corrupt persisted state. Source names the
// offending file, Line the offending line when known.
type DeserializationError struct {
	Source string
	Line   int
	Err    error
}

func (e *DeserializationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("corrupt store file %s line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("corrupt store file %s: %v", e.Source, e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }
