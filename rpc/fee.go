package rpc

// fee reports the open-ledger cost, used to populate the Fee field
// before signing.

type FeeDrops struct {
	BaseFee       string `json:"base_fee"`
	MedianFee     string `json:"median_fee"`
	MinimumFee    string `json:"minimum_fee"`
	OpenLedgerFee string `json:"open_ledger_fee"`
}

type FeeResult struct {
	Result
	CurrentLedgerSize  string   `json:"current_ledger_size"`
	Drops              FeeDrops `json:"drops"`
	LedgerCurrentIndex uint32   `json:"ledger_current_index"`
}

func (client Client) Fee() (*FeeResult, error) {
	result := &FeeResult{}
	err := client.call("fee", struct{}{}, result)
	return result, err
}
