// Package dto defines the external representations of the domain entities.
// These are the shapes exchanged with the API layer; they are distinct from
// the persisted entities.
package dto

import "github.com/google/uuid"

// Broker is the external representation of a broker.
type Broker struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
