package entity

import "github.com/google/uuid"

// Broker represents a brokerage firm owning zero or more accounts.
// Deleting a broker cascades to its accounts and their transactions via the
// database foreign key constraints, not application logic.
type Broker struct {
	// ID is the unique identifier for the broker.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	// Name is the display name of the broker. It must not be empty.
	Name string `gorm:"size:255;not null"`

	// Accounts are the accounts owned by this broker.
	Accounts []Account `gorm:"foreignKey:BrokerID;constraint:OnDelete:CASCADE"`
}

// EntityID returns the broker's unique identifier.
func (b *Broker) EntityID() uuid.UUID { return b.ID }

// SetEntityID assigns the broker's unique identifier.
func (b *Broker) SetEntityID(id uuid.UUID) { b.ID = id }
