// Package usecase implements the business logic for broker operations.
package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"investment_tracking/internal/domain/dto"
	"investment_tracking/internal/domain/entity"
	"investment_tracking/internal/domain/repository"
)

// BrokerUsecase orchestrates broker persistence. Every method runs inside
// exactly one unit of work and commits at most once.
type BrokerUsecase struct {
	uowFactory repository.UnitOfWorkFactory
}

// NewBrokerUsecase creates a new BrokerUsecase with the given factory.
func NewBrokerUsecase(f repository.UnitOfWorkFactory) *BrokerUsecase {
	return &BrokerUsecase{uowFactory: f}
}

// AddBroker persists a new broker and returns its representation carrying
// the generated id. A pre-assigned id is preserved unchanged.
func (u *BrokerUsecase) AddBroker(ctx context.Context, d dto.Broker) (dto.Broker, error) {
	if d.Name == "" {
		return dto.Broker{}, ErrBrokerNameRequired
	}

	uow, err := u.uowFactory.New()
	if err != nil {
		return dto.Broker{}, err
	}

	broker := &entity.Broker{ID: d.ID, Name: d.Name}
	if err := uow.Brokers().Add(ctx, broker); err != nil {
		return dto.Broker{}, err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return dto.Broker{}, err
	}
	slog.Info("added broker", "id", broker.ID, "name", broker.Name)

	return toBrokerDTO(broker), nil
}

// GetAllBrokers returns every broker.
func (u *BrokerUsecase) GetAllBrokers(ctx context.Context) ([]dto.Broker, error) {
	uow, err := u.uowFactory.New()
	if err != nil {
		return nil, err
	}

	brokers, err := uow.Brokers().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.Broker, len(brokers))
	for i, b := range brokers {
		out[i] = toBrokerDTO(b)
	}
	return out, nil
}

// GetBrokerByID returns the broker with the given id, or
// repository.ErrNotFound.
func (u *BrokerUsecase) GetBrokerByID(ctx context.Context, id uuid.UUID) (dto.Broker, error) {
	uow, err := u.uowFactory.New()
	if err != nil {
		return dto.Broker{}, err
	}

	broker, err := uow.Brokers().Get(ctx, id)
	if err != nil {
		return dto.Broker{}, err
	}
	return toBrokerDTO(broker), nil
}

// UpdateBroker merges the caller-supplied name onto the stored broker. An
// absent broker is reported as repository.ErrNotFound; the id is never
// overwritten.
func (u *BrokerUsecase) UpdateBroker(ctx context.Context, d dto.Broker) error {
	if d.Name == "" {
		return ErrBrokerNameRequired
	}

	uow, err := u.uowFactory.New()
	if err != nil {
		return err
	}

	broker, err := uow.Brokers().Get(ctx, d.ID)
	if err != nil {
		return err
	}

	broker.Name = d.Name
	if err := uow.Brokers().Update(ctx, broker); err != nil {
		return err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return err
	}
	slog.Info("updated broker", "id", broker.ID, "name", broker.Name)
	return nil
}

// DeleteBroker removes the broker with the given id. Deleting an absent
// broker is a logged no-op, so the operation is idempotent. Owned accounts
// and their transactions are removed by the database cascade.
func (u *BrokerUsecase) DeleteBroker(ctx context.Context, id uuid.UUID) error {
	uow, err := u.uowFactory.New()
	if err != nil {
		return err
	}

	broker, err := uow.Brokers().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			slog.Warn("no broker to delete", "id", id)
			return nil
		}
		return err
	}

	if err := uow.Brokers().Delete(ctx, broker); err != nil {
		return err
	}
	if err := uow.SaveChanges(ctx); err != nil {
		return err
	}
	slog.Info("deleted broker", "id", id)
	return nil
}

func toBrokerDTO(b *entity.Broker) dto.Broker {
	return dto.Broker{ID: b.ID, Name: b.Name}
}
