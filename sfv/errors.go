package sfv

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTrailingBytes    = errors.New("sfv: trailing bytes after field value")
	ErrInvalidList             = errors.New("sfv: invalid list")
	ErrInvalidDictionary       = errors.New("sfv: invalid dictionary")
	ErrInvalidInnerList        = errors.New("sfv: invalid inner list")
	ErrInvalidItem             = errors.New("sfv: invalid item")
	ErrInvalidKey              = errors.New("sfv: invalid key")
	ErrInvalidIntegerOrDecimal = errors.New("sfv: invalid integer or decimal")
	ErrInvalidString           = errors.New("sfv: invalid string")
	ErrInvalidByteSequence     = errors.New("sfv: invalid byte sequence")
	ErrInvalidBoolean          = errors.New("sfv: invalid boolean")
	ErrInvalidToken            = errors.New("sfv: invalid token")
	ErrInvalidDate             = errors.New("sfv: invalid date")
	ErrInvalidDisplayString    = errors.New("sfv: invalid display string")
)

// Errors surfaced by layers above the core (schema binding, typed
// accessors over parsed trees). The core itself never returns them.
var (
	ErrMissingKey         = errors.New("sfv: missing key")
	ErrInvalidTypeForItem = errors.New("sfv: invalid type for item")
	ErrIntegerOutOfRange  = errors.New("sfv: integer out of range")
	ErrIndexOutOfRange    = errors.New("sfv: index out of range")
)

// SyntaxError is a parse failure at a byte offset of the input. It
// wraps one of the ErrInvalid* sentinels, so errors.Is selects the
// failure kind.
type SyntaxError struct {
	Offset int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
