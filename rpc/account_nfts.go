package rpc

type AccountNFTsParams struct {
	Account     string `json:"account"`
	LedgerIndex string `json:"ledger_index,omitempty"`
}

type AccountNFT struct {
	Flags        uint32 `json:"Flags"`
	Issuer       string `json:"Issuer"`
	NFTokenID    string `json:"NFTokenID"`
	NFTokenTaxon uint32 `json:"NFTokenTaxon"`
	URI          string `json:"URI"`
	TransferFee  uint16 `json:"TransferFee"`
	Serial       uint32 `json:"nft_serial"`
}

type AccountNFTsResult struct {
	Result
	Account     string       `json:"account"`
	AccountNFTs []AccountNFT `json:"account_nfts"`
}

func (client Client) AccountNFTs(account string) (*AccountNFTsResult, error) {
	result := &AccountNFTsResult{}
	err := client.call("account_nfts", AccountNFTsParams{Account: account, LedgerIndex: "validated"}, result)
	return result, err
}
