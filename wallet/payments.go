package wallet

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ObiajuluM/myrkle/amount"
)

// Payment is one settled Payment transaction from an account's
// history.  Amount is what actually moved: the metadata's
// delivered_amount when present (authoritative for partial payments),
// otherwise the transaction's Amount field.
type Payment struct {
	Sender    string
	Receiver  string
	Amount    amount.Amount
	Fee       decimal.Decimal // whole XRP
	Timestamp time.Time
	Result    string
	TxID      string
}

// History splits payments by direction relative to the queried
// account.
type History struct {
	Sent     []Payment
	Received []Payment
}

// PaymentKind filters a payment history.
type PaymentKind int

const (
	AllPayments   PaymentKind = iota
	XRPPayments               // native only
	TokenPayments             // issued currencies only
)

const rippleEpoch = 946684800

// PaymentHistory returns the account's settled payments, newest first
// as rippled reports them, split into sent and received.
func PaymentHistory(client Ledger, account string, kind PaymentKind) (History, error) {
	result, err := client.AccountTx(account)
	if err != nil {
		return History{}, err
	}

	var history History
	for _, txn := range result.Transactions {
		if txn.Tx.TransactionType != "Payment" {
			continue
		}
		delivered := txn.Meta.DeliveredAmount
		if len(delivered) == 0 {
			delivered = txn.Tx.Amount
		}
		amt, err := amount.DecodeWire(delivered)
		if err != nil {
			// unrecognized amount shape; skip rather than abort history
			continue
		}
		switch kind {
		case XRPPayments:
			if !amt.IsNative {
				continue
			}
		case TokenPayments:
			if amt.IsNative {
				continue
			}
		}

		fee := decimal.Zero
		if txn.Tx.Fee != "" {
			feeDrops, err := decimal.NewFromString(txn.Tx.Fee)
			if err == nil && feeDrops.IsInteger() {
				fee = amount.DropsToDecimal(feeDrops.IntPart())
			}
		}

		p := Payment{
			Sender:    txn.Tx.Account,
			Receiver:  txn.Tx.Destination,
			Amount:    amt,
			Fee:       fee,
			Timestamp: time.Unix(int64(txn.Tx.Date)+rippleEpoch, 0).UTC(),
			Result:    txn.Meta.TransactionResult,
			TxID:      txn.Tx.Hash,
		}
		if p.Sender == account {
			history.Sent = append(history.Sent, p)
		} else {
			history.Received = append(history.Received, p)
		}
	}
	return history, nil
}
