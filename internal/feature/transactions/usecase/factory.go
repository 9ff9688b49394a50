package usecase

import (
	"fmt"

	"investment_tracking/internal/domain/dto"
	"investment_tracking/internal/domain/entity"
)

// TransactionFactory resolves between the three transaction kinds and their
// external representation. A naive field-by-field copy would lose the kind
// distinction; this is the single chokepoint where every code path handles
// exactly the three known kinds and fails loudly on a fourth.
type TransactionFactory struct{}

// NewTransactionFactory creates a new TransactionFactory.
func NewTransactionFactory() *TransactionFactory {
	return &TransactionFactory{}
}

// CreateTransaction builds the concrete entity variant matching the
// representation's kind tag, copying shared fields plus the kind-specific
// ones. An unrecognized tag is ErrUnknownTransactionKind.
func (f *TransactionFactory) CreateTransaction(d dto.Transaction) (*entity.Transaction, error) {
	t := &entity.Transaction{
		ID:         d.ID,
		Amount:     d.Amount,
		Commission: d.Commission,
		Date:       d.Date,
		AccountID:  d.AccountID,
	}

	switch kind := entity.TransactionKind(d.Type); kind {
	case entity.TransactionKindStock:
		if d.Ticker == "" {
			return nil, ErrTickerRequired
		}
		t.Kind = kind
		t.Stock = entity.StockDetails{Ticker: d.Ticker, Shares: d.Shares}
	case entity.TransactionKindAccount, entity.TransactionKindIncome:
		t.Kind = kind
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransactionKind, d.Type)
	}

	return t, nil
}

// CreateDTO builds the external representation matching the entity's kind.
// An unrecognized kind is ErrUnknownTransactionKind; this guards against
// rows written with a discriminator this version does not know.
func (f *TransactionFactory) CreateDTO(t *entity.Transaction) (dto.Transaction, error) {
	d := dto.Transaction{
		ID:         t.ID,
		Type:       string(t.Kind),
		Amount:     t.Amount,
		Commission: t.Commission,
		Date:       t.Date,
		AccountID:  t.AccountID,
	}

	switch t.Kind {
	case entity.TransactionKindStock:
		d.Ticker = t.Stock.Ticker
		d.Shares = t.Stock.Shares
	case entity.TransactionKindAccount, entity.TransactionKindIncome:
		// shared fields only
	default:
		return dto.Transaction{}, fmt.Errorf("%w: %q", ErrUnknownTransactionKind, t.Kind)
	}

	return d, nil
}
