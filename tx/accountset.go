package tx

import (
	"github.com/pkg/errors"
	"github.com/rubblelabs/ripple/data"
	"github.com/shopspring/decimal"

	"github.com/ObiajuluM/myrkle/amount"
)

// AccountSet asf flag values.  These are field values for SetFlag and
// ClearFlag, not bit flags.
const (
	AsfRequireDest               uint32 = 1
	AsfRequireAuth               uint32 = 2
	AsfDisallowXRP               uint32 = 3
	AsfDisableMaster             uint32 = 4
	AsfAccountTxnID              uint32 = 5
	AsfNoFreeze                  uint32 = 6
	AsfGlobalFreeze              uint32 = 7
	AsfDefaultRipple             uint32 = 8
	AsfDepositAuth               uint32 = 9
	AsfAuthorizedNFTokenMinter   uint32 = 10
	AsfDisallowIncomingNFTOffer  uint32 = 12
	AsfDisallowIncomingCheck     uint32 = 13
	AsfDisallowIncomingPayChan   uint32 = 14
	AsfDisallowIncomingTrustline uint32 = 15
	AsfAllowTrustLineClawback    uint32 = 16
)

func NewAccountSet(options ...Option) (*data.AccountSet, error) {
	tx := &data.AccountSet{
		TxBase: data.TxBase{
			TransactionType: data.ACCOUNT_SET,
		},
	}
	err := Prepare(tx, options...)
	return tx, err
}

// SetAccountFlag sets or clears one asf flag.  Toggling asfDisableMaster
// or asfNoFreeze requires signing with the master key, which is the
// signer's concern, not enforced here.
func SetAccountFlag(flag uint32, on bool) Option {
	return func(tx data.Transaction) error {
		t, ok := tx.(*data.AccountSet)
		if !ok {
			return errors.Errorf("expected AccountSet transaction, got %s", tx.GetBase().TransactionType)
		}
		if on {
			t.SetFlag = &flag
		} else {
			t.ClearFlag = &flag
		}
		return nil
	}
}

// SetDomain sets the account's domain.  Stored as raw bytes; the
// library hex encodes for the wire.  An empty string unsets the
// domain.
func SetDomain(domain string) Option {
	return func(tx data.Transaction) error {
		t, ok := tx.(*data.AccountSet)
		if !ok {
			return errors.Errorf("expected AccountSet transaction, got %s", tx.GetBase().TransactionType)
		}
		raw := data.VariableLength(domain)
		t.Domain = &raw
		return nil
	}
}

// SetTransferRate sets the issuer's transfer fee from a percentage,
// using the TransferRate fixed-point encoding.
func SetTransferRate(percent decimal.Decimal) Option {
	return func(tx data.Transaction) error {
		t, ok := tx.(*data.AccountSet)
		if !ok {
			return errors.Errorf("expected AccountSet transaction, got %s", tx.GetBase().TransactionType)
		}
		if percent.IsZero() {
			return nil // field omitted, ledger default applies
		}
		wire, err := amount.TransferRateToWire(percent)
		if err != nil {
			return err
		}
		t.TransferRate = &wire
		return nil
	}
}

// SetTickSize sets significant digits for offers involving the
// issuer's currencies; valid values are 3-15, or 0 to clear.
func SetTickSize(size uint8) Option {
	return func(tx data.Transaction) error {
		t, ok := tx.(*data.AccountSet)
		if !ok {
			return errors.Errorf("expected AccountSet transaction, got %s", tx.GetBase().TransactionType)
		}
		if size != 0 && (size < 3 || size > 15) {
			return errors.Errorf("tick size %d outside 3-15", size)
		}
		t.TickSize = &size
		return nil
	}
}

// NewIssuerAccountSet composes the first step of token issuance: the
// issuing (cold) account enables rippling, and advertises its domain,
// transfer fee and tick size.
func NewIssuerAccountSet(issuer data.Account, domain string, transferFee decimal.Decimal, tickSize uint8, options ...Option) (*data.AccountSet, error) {
	all := append([]Option{
		SetAddress(issuer),
		SetAccountFlag(AsfDefaultRipple, true),
		SetDomain(domain),
		SetTransferRate(transferFee),
		SetTickSize(tickSize),
	}, options...)
	return NewAccountSet(all...)
}

// NewManagerAccountSet composes the second step of token issuance: the
// operational (hot) account requires authorization for its trust lines.
func NewManagerAccountSet(manager data.Account, domain string, options ...Option) (*data.AccountSet, error) {
	all := append([]Option{
		SetAddress(manager),
		SetAccountFlag(AsfRequireAuth, true),
		SetDomain(domain),
	}, options...)
	return NewAccountSet(all...)
}
