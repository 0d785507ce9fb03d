package rpc

// account_lines
// {
//     "result": {
//         "account": "r9cZA1mLK5R5Am25ArfXFmqgNwjZgnfk59",
//         "lines": [
//             {
//                 "account": "r3vi7mWxru9rJCxETCyA1CHvzL96eZWx5z",
//                 "balance": "0",
//                 "currency": "ASP",
//                 "limit": "0",
//                 "limit_peer": "10",
//                 "quality_in": 0,
//                 "quality_out": 0
//             }
//         ],
//         "status": "success"
//     }
// }

type AccountLinesParams struct {
	Account     string `json:"account"`
	LedgerIndex string `json:"ledger_index,omitempty"`
}

type AccountLinesResult struct {
	Result
	Account string        `json:"account"`
	Lines   []AccountLine `json:"lines"`
}

type AccountLine struct {
	Account      string `json:"account"`
	Balance      string `json:"balance"`
	Currency     string `json:"currency"`
	Limit        string `json:"limit"`
	LimitPeer    string `json:"limit_peer"`
	NoRipple     bool   `json:"no_ripple"`
	NoRipplePeer bool   `json:"no_ripple_peer"`
	QualityIn    uint32 `json:"quality_in"`
	QualityOut   uint32 `json:"quality_out"`
	Freeze       bool   `json:"freeze"`
	FreezePeer   bool   `json:"freeze_peer"`
}

func (client Client) AccountLines(account string) (*AccountLinesResult, error) {
	result := &AccountLinesResult{}
	err := client.call("account_lines", AccountLinesParams{Account: account, LedgerIndex: "validated"}, result)
	return result, err
}
