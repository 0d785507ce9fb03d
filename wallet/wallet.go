// Package wallet derives account-level views from raw rippled query
// results: spendable balance net of reserves, payment history, token
// holdings and NFTs.
package wallet

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/ObiajuluM/myrkle/amount"
	"github.com/ObiajuluM/myrkle/rpc"
)

// Ledger is the query surface wallet functions need.  rpc.Client
// implements it; tests substitute a stub.
type Ledger interface {
	AccountInfo(account string) (*rpc.AccountInfoResult, error)
	AccountLines(account string) (*rpc.AccountLinesResult, error)
	AccountNFTs(account string) (*rpc.AccountNFTsResult, error)
	AccountTx(account string) (*rpc.AccountTxResult, error)
	GatewayBalances(account string) (*rpc.GatewayBalancesResult, error)
}

// Ledger reserve schedule, in drops.  The base reserve locks up every
// account; the owner reserve applies per owned ledger object.
const (
	baseReserveDrops  = 10000000
	ownerReserveDrops = 2000000
)

// Balance is an account's XRP position net of reserves.
type Balance struct {
	// Spendable is whole XRP available after the base and owner
	// reserves.  Negative when the account holds less than its
	// reserve, which the ledger permits only transiently.
	Spendable   decimal.Decimal
	ObjectCount uint32
	// Flags are the raw AccountRoot lsf bits.
	Flags uint32
}

// XRPBalance reports the account's spendable XRP and owned-object
// count.
func XRPBalance(client Ledger, account string) (Balance, error) {
	info, err := client.AccountInfo(account)
	if err != nil {
		return Balance{}, err
	}
	total, err := decimal.NewFromString(info.AccountData.Balance)
	if err != nil || !total.IsInteger() {
		return Balance{}, errors.Wrapf(amount.ErrUnsupportedAmountShape, "bad Balance %q", info.AccountData.Balance)
	}

	ownerCount := info.AccountData.OwnerCount
	reserved := int64(baseReserveDrops) + int64(ownerReserveDrops)*int64(ownerCount)
	spendableDrops := total.IntPart() - reserved

	return Balance{
		Spendable:   amount.DropsToDecimal(spendableDrops),
		ObjectCount: ownerCount,
		Flags:       info.AccountData.Flags,
	}, nil
}
