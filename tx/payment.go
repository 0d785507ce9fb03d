package tx

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rubblelabs/ripple/data"
	"github.com/shopspring/decimal"

	"github.com/ObiajuluM/myrkle/amount"
)

func NewPayment(options ...Option) (*data.Payment, error) {
	tx := &data.Payment{
		TxBase: data.TxBase{
			TransactionType: data.PAYMENT,
		},
	}
	err := Prepare(tx, options...)
	return tx, err
}

// SetXRPAmount sets the delivered amount from whole XRP.  Sub-drop
// precision is rejected, not truncated.
func SetXRPAmount(xrp decimal.Decimal) Option {
	return func(tx data.Transaction) error {
		t, ok := tx.(*data.Payment)
		if !ok {
			return errors.Errorf("expected Payment transaction, got %s", tx.GetBase().TransactionType)
		}
		// precision guard; the ledger cannot represent sub-drop XRP
		if _, err := amount.DecimalToDrops(xrp); err != nil {
			return err
		}
		amt, err := data.NewAmount(xrp.String() + "/XRP")
		if err != nil {
			return errors.Wrapf(err, "bad XRP amount %s", xrp)
		}
		t.Amount = *amt
		return nil
	}
}

// SetTokenAmount sets the delivered amount to an issued currency and
// mirrors it into SendMax, the shape used when sending tokens across
// trust lines.  Standard short symbols travel plain; LP token codes
// are already in wire form and pass through.
func SetTokenAmount(symbol, issuer, value string) Option {
	return func(tx data.Transaction) error {
		t, ok := tx.(*data.Payment)
		if !ok {
			return errors.Errorf("expected Payment transaction, got %s", tx.GetBase().TransactionType)
		}
		code, err := amount.SymbolToWire(symbol)
		if err != nil {
			return err
		}
		amt, err := data.NewAmount(fmt.Sprintf("%s/%s/%s", value, code, issuer))
		if err != nil {
			return errors.Wrapf(err, "bad token amount %s %s/%s", value, symbol, issuer)
		}
		t.Amount = *amt
		t.SendMax = amt
		return nil
	}
}

// SetAmount sets the delivered amount from an already-parsed amount,
// native or issued.
func SetAmount(amt interface{}) Option {
	return func(tx data.Transaction) error {
		t, ok := tx.(*data.Payment)
		if !ok {
			return errors.Errorf("expected Payment transaction, got %s", tx.GetBase().TransactionType)
		}
		var a *data.Amount
		var err error
		switch amt := amt.(type) {
		case string:
			a, err = data.NewAmount(amt)
			if err != nil {
				return errors.Wrapf(err, "invalid amount: %s", amt)
			}
		case *data.Amount:
			a = amt
		default:
			return fmt.Errorf("SetAmount: wrong type %T", amt)
		}
		t.Amount = *a
		return nil
	}
}

// SetPartialPayment allows the payment to succeed by delivering less
// than the full amount.
func SetPartialPayment(on bool) Option {
	return func(tx data.Transaction) error {
		if _, ok := tx.(*data.Payment); !ok {
			return errors.Errorf("expected Payment transaction, got %s", tx.GetBase().TransactionType)
		}
		return Flags(tx, data.TxPartialPayment, on)
	}
}

// SetSendMax caps what the sender spends, for cross-currency delivery.
func SetSendMax(amt interface{}) Option {
	return func(tx data.Transaction) error {
		t, ok := tx.(*data.Payment)
		if !ok {
			return errors.Errorf("expected Payment transaction, got %s", tx.GetBase().TransactionType)
		}
		var a *data.Amount
		var err error
		switch amt := amt.(type) {
		case string:
			a, err = data.NewAmount(amt)
			if err != nil {
				return errors.Wrapf(err, "invalid amount: %s", amt)
			}
		case *data.Amount:
			a = amt
		default:
			return fmt.Errorf("SetSendMax: wrong type %T", amt)
		}
		t.SendMax = a
		return nil
	}
}

// SetDeliverMin sets the floor for partial payments.
func SetDeliverMin(amt interface{}) Option {
	return func(tx data.Transaction) error {
		t, ok := tx.(*data.Payment)
		if !ok {
			return errors.Errorf("expected Payment transaction, got %s", tx.GetBase().TransactionType)
		}
		var a *data.Amount
		var err error
		switch amt := amt.(type) {
		case string:
			a, err = data.NewAmount(amt)
			if err != nil {
				return errors.Wrapf(err, "invalid amount: %s", amt)
			}
		case *data.Amount:
			a = amt
		default:
			return fmt.Errorf("SetDeliverMin: wrong type %T", amt)
		}
		t.DeliverMin = a
		return nil
	}
}

// NewTokenBurn composes the payment that retires issued tokens: a
// payment of the token back to its issuer.
func NewTokenBurn(sender data.Account, symbol, issuer, value string, options ...Option) (*data.Payment, error) {
	issuerAccount, err := data.NewAccountFromAddress(issuer)
	if err != nil {
		return nil, errors.Wrapf(err, "bad issuer %s", issuer)
	}
	all := append([]Option{
		SetAddress(sender),
		SetDestination(*issuerAccount),
		SetTokenAmount(symbol, issuer, value),
	}, options...)
	return NewPayment(all...)
}
