// Package tx composes unsigned XRP Ledger transactions.
//
// Composers follow a functional-option style: New* constructs the
// typed rubblelabs transaction and applies options, so callers name
// exactly the fields they care about.  Signing and submission are the
// caller's problem; everything here stops at a signing-ready struct.
package tx

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rubblelabs/ripple/data"
)

// Option configures one field of a transaction under composition.
type Option func(data.Transaction) error

// rippleEpoch is the offset of ledger time from Unix time.
const rippleEpoch = 946684800

// RippleTime converts a wall-clock time to ledger time, used by
// expiration fields.
func RippleTime(t time.Time) uint32 {
	return uint32(t.Unix() - rippleEpoch)
}

// FromRippleTime converts ledger time back to wall-clock time.
func FromRippleTime(t uint32) time.Time {
	return time.Unix(int64(t)+rippleEpoch, 0).UTC()
}

// Prepare applies options in order and validates fields required on
// every transaction.
func Prepare(tx data.Transaction, options ...Option) error {
	for _, option := range options {
		if err := option(tx); err != nil {
			return err
		}
	}
	if tx.GetBase().Sequence == 0 {
		return errors.New("transaction requires an account sequence number")
	}
	return nil
}

// Stamp returns the options every composed transaction carries: the
// application source tag and the client memo, both threaded in from
// configuration rather than baked into each composer.
func Stamp(sourceTag *uint32, memoType, memoData string) []Option {
	options := []Option{SetCanonicalSig(true)}
	if sourceTag != nil {
		options = append(options, SetSourceTag(sourceTag))
	}
	if memoData != "" {
		options = append(options, AddMemo(memoType, memoData))
	}
	return options
}

func SetAddress(address interface{}) Option {
	return func(tx data.Transaction) error {
		var account *data.Account
		var err error

		switch address := address.(type) {
		default:
			return fmt.Errorf("unexpected address type %T in SetAddress", address)
		case string:
			account, err = data.NewAccountFromAddress(address)
			if err != nil {
				return errors.Wrapf(err, "bad address %s", address)
			}
		case data.Account:
			account = &address
		case *data.Account:
			account = address
		}
		tx.GetBase().Account = *account
		return nil
	}
}

func SetSequence(seq uint32) Option {
	return func(tx data.Transaction) error {
		tx.GetBase().Sequence = seq
		return nil
	}
}

func SetLastLedgerSequence(seq uint32) Option {
	return func(tx data.Transaction) error {
		tx.GetBase().LastLedgerSequence = &seq
		return nil
	}
}

// SetFee sets the transaction cost, in drops.
func SetFee(drops int) Option {
	return func(tx data.Transaction) error {
		fee, err := data.NewNativeValue(int64(drops))
		if err != nil {
			return errors.Wrapf(err, "bad fee %d", drops)
		}
		tx.GetBase().Fee = *fee
		return nil
	}
}

func Flags(tx data.Transaction, flag data.TransactionFlag, onOrOff bool) error {
	base := tx.GetBase()
	if base.Flags == nil {
		var f data.TransactionFlag
		base.Flags = &f
	}
	if onOrOff {
		*base.Flags = *base.Flags | flag
	} else {
		*base.Flags = *base.Flags &^ flag
	}
	return nil
}

func SetFlags(flag data.TransactionFlag) Option {
	return func(tx data.Transaction) error {
		return Flags(tx, flag, true)
	}
}

func SetCanonicalSig(value bool) Option {
	return func(tx data.Transaction) error {
		return Flags(tx, data.TxCanonicalSignature, value)
	}
}

// AddMemo attaches a memo with the given plain-text type and data.
func AddMemo(memoType, memoData string) Option {
	return func(tx data.Transaction) error {
		if memoData == "" {
			return nil
		}
		base := tx.GetBase()

		// Anonymous struct matching the data.Memo definition; rubblelabs
		// offers no constructor for the nested shape.
		memo := struct {
			MemoType   data.VariableLength
			MemoData   data.VariableLength
			MemoFormat data.VariableLength
		}{
			MemoType: data.VariableLength(memoType),
			MemoData: data.VariableLength(memoData),
		}
		base.Memos = append(base.Memos, data.Memo{Memo: memo})
		return nil
	}
}

func SetDestination(account data.Account) Option {
	return func(tx data.Transaction) error {
		switch tx := tx.(type) {
		default:
			return fmt.Errorf("unexpected transaction type %T in SetDestination", tx)
		case *data.Payment:
			tx.Destination = account
		}
		return nil
	}
}

func SetDestinationTag(tag *uint32) Option {
	return func(tx data.Transaction) error {
		switch tx := tx.(type) {
		default:
			return fmt.Errorf("unexpected transaction type %T in SetDestinationTag", tx)
		case *data.Payment:
			tx.DestinationTag = tag
		}
		return nil
	}
}

func SetSourceTag(tag *uint32) Option {
	return func(tx data.Transaction) error {
		tx.GetBase().SourceTag = tag
		return nil
	}
}
