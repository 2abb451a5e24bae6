package client

import (
	"github.com/google/uuid"
	"github.com/loanstreet/servicing-go/pkg/servicing"
)

// requireUUID gates a path parameter before any request is issued.
func requireUUID(param, value string) error {
	_, err := uuid.Parse(value)
	if err != nil {
		return &servicing.InvalidPathParamError{Param: param, Value: value}
	}

	return nil
}
