package usecase

import "errors"

// ErrBrokerNameRequired indicates a broker payload with an empty name.
var ErrBrokerNameRequired = errors.New("broker name cannot be empty")
