package rpc

// gateway_balances reports what an issuing account owes (obligations)
// and what it holds at other issuers (assets).
//
// {
//   "result": {
//     "account": "rMwjYedjc7qqtKYVLiAccJSmCwih4LnE2q",
//     "obligations": { "USD": "245.1918005777287" },
//     "assets": {
//       "r9F6wk8HkXrgYWoJ7fsv4VrUBVoqDVtzkH": [
//         { "currency": "BTC", "value": "5444166510000000e-26" }
//       ]
//     },
//     "status": "success"
//   }
// }

type GatewayBalancesParams struct {
	Account     string `json:"account"`
	LedgerIndex string `json:"ledger_index,omitempty"`
}

type IssuedValue struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

type GatewayBalancesResult struct {
	Result
	Account     string                   `json:"account"`
	Obligations map[string]string        `json:"obligations"`
	Assets      map[string][]IssuedValue `json:"assets"`
}

func (client Client) GatewayBalances(account string) (*GatewayBalancesResult, error) {
	result := &GatewayBalancesResult{}
	err := client.call("gateway_balances", GatewayBalancesParams{Account: account, LedgerIndex: "validated"}, result)
	return result, err
}
