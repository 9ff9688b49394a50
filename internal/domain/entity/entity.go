// Package entity defines the persisted domain entities shared across features.
package entity

import "github.com/google/uuid"

// Entity is implemented by every persisted aggregate. A uuid.Nil identifier
// means the entity has not been assigned one yet; repositories generate a
// fresh identifier on Add in that case.
type Entity interface {
	// EntityID returns the unique identifier of the entity.
	EntityID() uuid.UUID

	// SetEntityID assigns the unique identifier. Once assigned, an
	// identifier is never changed again.
	SetEntityID(id uuid.UUID)
}
