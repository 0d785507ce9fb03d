package rpc

import "encoding/json"

// {
//   "result": {
//     "account": "rpP2JgiMyTF5jR5hLG3xHCPi1knBb1v9cM",
//     "offers": [
//       {
//         "flags": 65536,
//         "quality": "0.00000000574666765650638",
//         "seq": 6577664,
//         "taker_gets": "33687728098",
//         "taker_pays": {
//           "currency": "EUR",
//           "issuer": "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq",
//           "value": "193.5921774819578"
//         }
//       }
//     ],
//     "status": "success"
//   }
// }

type AccountOffersParams struct {
	Account     string `json:"account"`
	LedgerIndex string `json:"ledger_index,omitempty"`
}

// Offers stay raw here; the book package owns offer-record decoding
// and accepts this query's field casing directly.
type AccountOffersResult struct {
	Result
	Account            string            `json:"account"`
	LedgerCurrentIndex uint32            `json:"ledger_current_index"`
	Offers             []json.RawMessage `json:"offers"`
}

func (client Client) AccountOffers(account string) (*AccountOffersResult, error) {
	result := &AccountOffersResult{}
	err := client.call("account_offers", AccountOffersParams{Account: account, LedgerIndex: "validated"}, result)
	return result, err
}
