package tx

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rubblelabs/ripple/data"
)

func NewOfferCreate(options ...Option) (*data.OfferCreate, error) {
	tx := &data.OfferCreate{
		TxBase: data.TxBase{
			TransactionType: data.OFFER_CREATE,
		},
	}
	err := Prepare(tx, options...)
	return tx, err
}

// NewLiquidityOffer composes a passive offer: it rests on the book as
// liquidity instead of consuming offers that exactly match it.
func NewLiquidityOffer(creator data.Account, pays, gets *data.Amount, expiry *time.Time, options ...Option) (*data.OfferCreate, error) {
	all := []Option{
		SetAddress(creator),
		SetTakerPays(pays),
		SetTakerGets(gets),
		SetPassive(true),
	}
	if expiry != nil {
		all = append(all, SetExpiration(RippleTime(*expiry)))
	}
	all = append(all, options...)
	return NewOfferCreate(all...)
}

// Swap behavior for NewBookSwap.  Sell exchanges the entire taker-gets
// amount even past the quoted price; FillOrKill cancels unless fully
// filled; ImmediateOrCancel trades what it can and never rests on the
// book.  A tecKILLED result means the full amount could not be
// obtained.
type SwapMode struct {
	Sell              bool
	FillOrKill        bool
	ImmediateOrCancel bool
}

// NewBookSwap composes an offer meant to cross the existing book.
func NewBookSwap(creator data.Account, pays, gets *data.Amount, mode SwapMode, options ...Option) (*data.OfferCreate, error) {
	all := []Option{
		SetAddress(creator),
		SetTakerPays(pays),
		SetTakerGets(gets),
	}
	if mode.Sell {
		all = append(all, SetFlags(data.TxSell))
	}
	if mode.FillOrKill {
		all = append(all, SetFlags(data.TxFillOrKill))
	}
	if mode.ImmediateOrCancel {
		all = append(all, SetFlags(data.TxImmediateOrCancel))
	}
	all = append(all, options...)
	return NewOfferCreate(all...)
}

func SetTakerPays(amt interface{}) Option {
	return func(tx data.Transaction) error {
		t, ok := tx.(*data.OfferCreate)
		if !ok {
			return errors.Errorf("expected OfferCreate transaction, got %s", tx.GetBase().TransactionType)
		}
		a, err := coerceAmount(amt)
		if err != nil {
			return err
		}
		t.TakerPays = *a
		return nil
	}
}

func SetTakerGets(amt interface{}) Option {
	return func(tx data.Transaction) error {
		t, ok := tx.(*data.OfferCreate)
		if !ok {
			return errors.Errorf("expected OfferCreate transaction, got %s", tx.GetBase().TransactionType)
		}
		a, err := coerceAmount(amt)
		if err != nil {
			return err
		}
		t.TakerGets = *a
		return nil
	}
}

// SetPassive marks the offer as resting liquidity.
func SetPassive(on bool) Option {
	return func(tx data.Transaction) error {
		if _, ok := tx.(*data.OfferCreate); !ok {
			return errors.Errorf("expected OfferCreate transaction, got %s", tx.GetBase().TransactionType)
		}
		return Flags(tx, data.TxPassive, on)
	}
}

// SetExpiration sets the offer's expiration, in ledger time.
func SetExpiration(t uint32) Option {
	return func(tx data.Transaction) error {
		offer, ok := tx.(*data.OfferCreate)
		if !ok {
			return errors.Errorf("expected OfferCreate transaction, got %s", tx.GetBase().TransactionType)
		}
		offer.Expiration = &t
		return nil
	}
}

func coerceAmount(amt interface{}) (*data.Amount, error) {
	switch amt := amt.(type) {
	case string:
		a, err := data.NewAmount(amt)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid amount: %s", amt)
		}
		return a, nil
	case data.Amount:
		return &amt, nil
	case *data.Amount:
		return amt, nil
	}
	return nil, errors.Errorf("unexpected amount type %T", amt)
}
