package customer

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrPhoneExists      = errors.New("customer with this phone number already exists")
)
