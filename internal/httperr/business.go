package httperr

import "errors"

// BusinessError is the error currency between use cases and handlers.
// Use cases return a stable code; handlers map it to an HTTP status and a
// user-facing message. Meta carries an optional diagnostic payload.
type BusinessError struct {
	Code string
	Meta any
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessMeta(code string, meta any) error {
	return BusinessError{Code: code, Meta: meta}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
