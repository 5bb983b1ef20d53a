package instance

import "fmt"

// FormatError reports text that does not conform to the expected grammar of an instance
type FormatError struct {
	Kind   string // Instance kind being parsed (e.g. "sat", "graph")
	Reason string
}

func NewFormatError(kind, format string, args ...any) *FormatError {
	return &FormatError{
		Kind:   kind,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (err *FormatError) Error() string {
	return fmt.Sprintf("invalid %v format: %v", err.Kind, err.Reason)
}
