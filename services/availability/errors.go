package availability

import "fmt"

// InvalidQueryError reports genuinely malformed query input. The public
// constructors normalize aggressively (reversed ranges are swapped, empty
// status sets get defaults), so only hand-built queries can trigger it.
type InvalidQueryError struct {
	Code    string
	Message string
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidQueryError(msg string) error {
	return &InvalidQueryError{
		Code:    "invalidQuery",
		Message: msg,
	}
}
