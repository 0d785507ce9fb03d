package tx

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rubblelabs/ripple/data"

	"github.com/ObiajuluM/myrkle/amount"
)

func NewTrustSet(options ...Option) (*data.TrustSet, error) {
	tx := &data.TrustSet{
		TxBase: data.TxBase{
			TransactionType: data.TRUST_SET,
		},
	}
	err := Prepare(tx, options...)
	return tx, err
}

// SetLimit sets the trust-line limit: the most of the issuer's token
// the account is willing to hold.  A token issuer's counterparty opens
// the line with the planned total supply as the limit.
func SetLimit(symbol, issuer, value string) Option {
	return func(tx data.Transaction) error {
		t, ok := tx.(*data.TrustSet)
		if !ok {
			return errors.Errorf("expected TrustSet transaction, got %s", tx.GetBase().TransactionType)
		}
		code, err := amount.SymbolToWire(symbol)
		if err != nil {
			return err
		}
		limit, err := data.NewAmount(fmt.Sprintf("%s/%s/%s", value, code, issuer))
		if err != nil {
			return errors.Wrapf(err, "bad limit %s %s/%s", value, symbol, issuer)
		}
		t.LimitAmount = *limit
		return nil
	}
}

func SetLimitAmount(a data.Amount) Option {
	return func(tx data.Transaction) error {
		t, ok := tx.(*data.TrustSet)
		if !ok {
			return errors.Errorf("expected TrustSet transaction, got %s", tx.GetBase().TransactionType)
		}
		t.LimitAmount = a
		return nil
	}
}

// SetNoRipple disables rippling on the line being set.
func SetNoRipple(on bool) Option {
	return func(tx data.Transaction) error {
		if _, ok := tx.(*data.TrustSet); !ok {
			return errors.Errorf("expected TrustSet transaction, got %s", tx.GetBase().TransactionType)
		}
		if on {
			return Flags(tx, data.TxSetNoRipple, true)
		}
		return Flags(tx, data.TxClearNoRipple, true)
	}
}
