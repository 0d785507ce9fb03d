package indexer

// xls20-nfts endpoints, https://api.xrpldata.com/docs
//
// {
//   "info": { "ledger_index": 75443693, "ledger_hash": "..." },
//   "data": {
//     "issuer": "rDCh8v8g2g7eGEkXWLMz2gRPe2TLbwoocB",
//     "nfts": [
//       {
//         "NFTokenID": "000813886377BBDA772433D7FCF16A9710D9D958D9F7129F376D5FCA00000535",
//         "Issuer": "rDCh8v8g2g7eGEkXWLMz2gRPe2TLbwoocB",
//         "Owner": "rDsbeomae4FXwgQTJp9Rs64Qg9vDiTCdBv",
//         "Taxon": 13,
//         "Sequence": 1333,
//         "TransferFee": 5000,
//         "Flags": 8,
//         "URI": "68747470..."
//       }
//     ]
//   }
// }

// IssuedNFT is one token as the indexer reports it.  URI and
// TransferFee stay in wire form; callers decode for display.
type IssuedNFT struct {
	NFTokenID   string `json:"NFTokenID"`
	Issuer      string `json:"Issuer"`
	Owner       string `json:"Owner"`
	Taxon       uint32 `json:"Taxon"`
	Sequence    uint32 `json:"Sequence"`
	TransferFee uint16 `json:"TransferFee"`
	Flags       uint32 `json:"Flags"`
	URI         string `json:"URI"`
}

type IssuerNFTsResponse struct {
	Response
	Data struct {
		Issuer string      `json:"issuer"`
		NFTs   []IssuedNFT `json:"nfts"`
	} `json:"data"`
}

// NFTsByIssuer lists every token an account has minted, including
// tokens now held by other accounts, which rippled's account_nfts
// cannot report.
func (this Client) NFTsByIssuer(issuer string) (*IssuerNFTsResponse, error) {
	response := &IssuerNFTsResponse{}
	err := this.Get(response, this.Endpoint("api", "v1", "xls20-nfts", "issuer", issuer), nil)
	return response, err
}
