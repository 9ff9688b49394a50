package dto

import "github.com/google/uuid"

// Account is the external representation of an account. Balance is
// deliberately absent: it is a derived field with no API path that sets it,
// and it is exposed only through the broker balance aggregate.
type Account struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	BrokerID uuid.UUID `json:"brokerId"`
}
