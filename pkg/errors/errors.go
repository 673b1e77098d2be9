package errors

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures a verification can end with. Callers
// branch on the kind to tell bad input apart from corrupted data.
type ErrorKind int

const (
	// KindInvalidChecksumType indicates the caller asked for a checksum
	// algorithm that does not normalize to any supported type.
	KindInvalidChecksumType ErrorKind = iota + 1

	// KindVerification indicates the measured size or digest of a stream
	// did not match the expected value.
	KindVerification
)

// String returns the string representation of the error kind.
// This is useful for logging and error reporting.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidChecksumType:
		return "invalid_checksum_type"
	case KindVerification:
		return "verification"
	default:
		return "unknown"
	}
}

// Code is a stable identifier that hosts can map to user facing messages.
type Code string

const (
	CodeInvalidChecksumType Code = "VRF1001"
	CodeSizeMismatch        Code = "VRF2001"
	CodeChecksumMismatch    Code = "VRF2002"
)

// CheckKind names the property a VerificationError was raised for.
type CheckKind string

const (
	CheckSize     CheckKind = "size"
	CheckChecksum CheckKind = "checksum"
)

// CodedError is implemented by every error in the verification taxonomy.
// Data returns the payload fields a host needs to render the message.
type CodedError interface {
	error
	Code() Code
	Kind() ErrorKind
	Data() map[string]any
}

var (
	_ CodedError = (*InvalidChecksumTypeError)(nil)
	_ CodedError = (*VerificationError)(nil)
)

// InvalidChecksumTypeError is returned when a checksum type cannot be normalized.
type InvalidChecksumTypeError struct {
	Value string `json:"value"` // The rejected checksum type, as supplied.
}

func NewInvalidChecksumTypeError(value string) *InvalidChecksumTypeError {
	return &InvalidChecksumTypeError{Value: value}
}

func (e *InvalidChecksumTypeError) Error() string {
	return fmt.Sprintf("[%s] the checksum type '%s' is unknown", e.Code(), e.Value)
}

func (e *InvalidChecksumTypeError) Code() Code { return CodeInvalidChecksumType }
func (e *InvalidChecksumTypeError) Kind() ErrorKind { return KindInvalidChecksumType }

func (e *InvalidChecksumTypeError) Data() map[string]any {
	return map[string]any{"checksum_type": e.Value}
}

// VerificationError reports a size or digest mismatch. Expected and Actual hold
// the decimal byte count for size checks and the hex digest for checksum checks.
type VerificationError struct {
	Check     CheckKind `json:"check"`
	Algorithm string    `json:"algorithm,omitempty"`
	Expected  string    `json:"expected"`
	Actual    string    `json:"actual"`
}

func NewSizeMismatchError(expected, actual uint64) *VerificationError {
	return &VerificationError{
		Check:    CheckSize,
		Expected: fmt.Sprintf("%d", expected),
		Actual:   fmt.Sprintf("%d", actual),
	}
}

func NewChecksumMismatchError(algorithm, expected, actual string) *VerificationError {
	return &VerificationError{
		Check:     CheckChecksum,
		Algorithm: algorithm,
		Expected:  expected,
		Actual:    actual,
	}
}

func (e *VerificationError) Error() string {
	if e.Check == CheckChecksum {
		return fmt.Sprintf(
			"[%s] %s checksum mismatch: expected %s, got %s", e.Code(), e.Algorithm, e.Expected, e.Actual,
		)
	}
	return fmt.Sprintf("[%s] size mismatch: expected %s bytes, got %s", e.Code(), e.Expected, e.Actual)
}

func (e *VerificationError) Code() Code {
	if e.Check == CheckChecksum {
		return CodeChecksumMismatch
	}
	return CodeSizeMismatch
}

func (e *VerificationError) Kind() ErrorKind { return KindVerification }

func (e *VerificationError) Data() map[string]any {
	data := map[string]any{
		"check":    string(e.Check),
		"expected": e.Expected,
		"actual":   e.Actual,
	}
	if e.Algorithm != "" {
		data["algorithm"] = e.Algorithm
	}
	return data
}

// IsInvalidChecksumType checks if a given error is an InvalidChecksumTypeError.
func IsInvalidChecksumType(err error) bool {
	var ie *InvalidChecksumTypeError
	return errors.As(err, &ie)
}

// AsInvalidChecksumType attempts to extract an InvalidChecksumTypeError from a given error.
func AsInvalidChecksumType(err error) *InvalidChecksumTypeError {
	var ie *InvalidChecksumTypeError
	if errors.As(err, &ie) {
		return ie
	}
	return nil
}

// IsVerificationError checks if a given error is a VerificationError.
func IsVerificationError(err error) bool {
	var ve *VerificationError
	return errors.As(err, &ve)
}

// AsVerificationError attempts to extract a VerificationError from a given error.
func AsVerificationError(err error) *VerificationError {
	var ve *VerificationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// AsCodedError returns the first CodedError in the chain, or nil.
func AsCodedError(err error) CodedError {
	var ce CodedError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}
