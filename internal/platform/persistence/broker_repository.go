package persistence

import (
	"gorm.io/gorm"

	"investment_tracking/internal/domain/entity"
	"investment_tracking/internal/domain/repository"
)

// BrokerRepository persists brokers. It adds nothing beyond the generic
// contract.
type BrokerRepository struct {
	*Repository[entity.Broker, *entity.Broker]
}

// Compile-time check that BrokerRepository implements the domain contract.
var _ repository.BrokerRepository = (*BrokerRepository)(nil)

// NewBrokerRepository creates a broker repository bound to the given session.
func NewBrokerRepository(db *gorm.DB) *BrokerRepository {
	return &BrokerRepository{Repository: NewRepository[entity.Broker, *entity.Broker](db)}
}
