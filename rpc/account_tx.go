package rpc

import "encoding/json"

type AccountTxParams struct {
	Account string `json:"account"`
	// -1/-1 asks for the server's full available range.
	LedgerIndexMin int64  `json:"ledger_index_min"`
	LedgerIndexMax int64  `json:"ledger_index_max"`
	Limit          uint32 `json:"limit,omitempty"`
}

// TxSummary is the subset of transaction fields the wallet layer
// reads.  Amount stays raw: it may be a drop string or an issued
// object, and the amount package decodes both.
type TxSummary struct {
	TransactionType string          `json:"TransactionType"`
	Account         string          `json:"Account"`
	Destination     string          `json:"Destination"`
	Amount          json.RawMessage `json:"Amount"`
	Fee             string          `json:"Fee"`
	Date            uint32          `json:"date"`
	Hash            string          `json:"hash"`
}

type TxMeta struct {
	TransactionResult string          `json:"TransactionResult"`
	DeliveredAmount   json.RawMessage `json:"delivered_amount"`
}

type AccountTransaction struct {
	Tx        TxSummary `json:"tx"`
	Meta      TxMeta    `json:"meta"`
	Validated bool      `json:"validated"`
}

type AccountTxResult struct {
	Result
	Account      string               `json:"account"`
	Transactions []AccountTransaction `json:"transactions"`
}

func (client Client) AccountTx(account string) (*AccountTxResult, error) {
	result := &AccountTxResult{}
	err := client.call("account_tx", AccountTxParams{
		Account:        account,
		LedgerIndexMin: -1,
		LedgerIndexMax: -1,
	}, result)
	return result, err
}
