package internal

import "fmt"

type BaseError string

func (e BaseError) Error() string {
	return string(e)
}

const (
	ErrMissingParam      BaseError = "missing parameter"
	ErrNotFound          BaseError = "not found"
	ErrSourceUnavailable BaseError = "source unavailable"
	ErrMalformedRecord   BaseError = "malformed record"
	ErrAssetDecode       BaseError = "asset decode failure"
)

type ErrorWrapper struct {
	Err     error
	Message string
	Cause   error
}

func (e *ErrorWrapper) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %s: %v", e.Err, e.Message, e.Cause)
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Message)
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As.
func (e *ErrorWrapper) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

func NewMissingParamError(param string) error {
	return &ErrorWrapper{
		Err:     ErrMissingParam,
		Message: param,
	}
}

func NewNotFoundError(msg string) error {
	return &ErrorWrapper{
		Err:     ErrNotFound,
		Message: msg,
	}
}

func NewSourceUnavailableError(msg string, cause error) error {
	return &ErrorWrapper{
		Err:     ErrSourceUnavailable,
		Message: msg,
		Cause:   cause,
	}
}

func NewMalformedRecordError(msg string) error {
	return &ErrorWrapper{
		Err:     ErrMalformedRecord,
		Message: msg,
	}
}

func NewAssetDecodeError(msg string, cause error) error {
	return &ErrorWrapper{
		Err:     ErrAssetDecode,
		Message: msg,
		Cause:   cause,
	}
}
