package rpc

// {
//     "account": "rpP2JgiMyTF5jR5hLG3xHCPi1knBb1v9cM",
//     "ledger_index": "validated"
// }

type AccountInfoParams struct {
	Account     string `json:"account"`
	LedgerIndex string `json:"ledger_index,omitempty"`
}

// account_data subset the wallet layer reads.  Balance is the raw drop
// count; reserve math happens in the wallet package.
type AccountData struct {
	Account      string `json:"Account"`
	Balance      string `json:"Balance"`
	Domain       string `json:"Domain"`
	Flags        uint32 `json:"Flags"`
	OwnerCount   uint32 `json:"OwnerCount"`
	Sequence     uint32 `json:"Sequence"`
	TransferRate uint32 `json:"TransferRate"`
	TickSize     uint8  `json:"TickSize"`
}

type AccountInfoResult struct {
	Result
	AccountData        AccountData `json:"account_data"`
	LedgerCurrentIndex uint32      `json:"ledger_current_index"`
	LedgerIndex        uint32      `json:"ledger_index"`
}

func (client Client) AccountInfo(account string) (*AccountInfoResult, error) {
	result := &AccountInfoResult{}
	err := client.call("account_info", AccountInfoParams{Account: account, LedgerIndex: "validated"}, result)
	return result, err
}
