package httperr

import "errors"

// BusinessError carries a machine-readable code through the usecase layer.
// The handler maps codes to HTTP statuses and localized messages; the code
// itself never reaches the wire.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
