package tutor

// ServiceError is the single opaque failure signal for every tutor
// operation: network errors, bad HTTP statuses, and responses that fail
// schema validation all surface as one of these. There is no partial-result
// contract, so a ServiceError always means the caller got nothing.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return "tutor " + e.Op + ": " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func serviceErr(op string, err error) error {
	return &ServiceError{Op: op, Err: err}
}
