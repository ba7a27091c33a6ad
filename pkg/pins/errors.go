package pins

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by DecodeError.
var (
	ErrPinCount           = errors.New("pin count out of range")
	ErrTruncated          = errors.New("unexpected end of buffer")
	ErrStringLength       = errors.New("string length exceeds buffer")
	ErrUnknownTextHistory = errors.New("unknown text history type")
	ErrUnknownArgument    = errors.New("unknown format argument type")
	ErrTextDepth          = errors.New("text nesting too deep")
	ErrDirection          = errors.New("invalid pin direction")
	ErrContainerType      = errors.New("invalid container type")
	ErrNameIndex          = errors.New("name index out of range")
	ErrLinkCount          = errors.New("link count out of range")
)

// DecodeError reports where pin decoding diverged from the expected layout.
// Offset is relative to the start of the buffer handed to the decoder, so
// it can be matched against a hex dump of the node's Extras.
type DecodeError struct {
	Field    string // Last field the decoder attempted
	PinName  string // Display name of the pin being decoded, if read yet
	PinIndex int    // Index of the pin within the blob, -1 before the first pin
	Offset   int    // Byte offset of the failing read
	Cause    error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.PinIndex < 0 {
		return fmt.Sprintf("pins: %s at offset %d: %v", e.Field, e.Offset, e.Cause)
	}
	if e.PinName != "" {
		return fmt.Sprintf("pins: pin %d (%q) field %s at offset %d: %v", e.PinIndex, e.PinName, e.Field, e.Offset, e.Cause)
	}
	return fmt.Sprintf("pins: pin %d field %s at offset %d: %v", e.PinIndex, e.Field, e.Offset, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *DecodeError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// IsDecodeError returns the DecodeError in err's chain, if any.
func IsDecodeError(err error) (*DecodeError, bool) {
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
