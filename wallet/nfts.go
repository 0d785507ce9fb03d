package wallet

import (
	"github.com/ObiajuluM/myrkle/amount"
	"github.com/shopspring/decimal"
)

// NFT is a token held by an account, with wire fields decoded for
// display.
type NFT struct {
	NFTokenID   string
	Issuer      string
	Taxon       uint32
	Serial      uint32
	URI         string // decoded from hex, raw hex if not valid
	Flags       uint32
	TransferFee decimal.Decimal // percent
}

// NFTs lists the tokens held by an account.
func NFTs(client Ledger, account string) ([]NFT, error) {
	result, err := client.AccountNFTs(account)
	if err != nil {
		return nil, err
	}
	var nfts []NFT
	for _, token := range result.AccountNFTs {
		uri := token.URI
		if decoded, err := amount.DecodeText(token.URI); err == nil {
			uri = decoded
		}
		nfts = append(nfts, NFT{
			NFTokenID:   token.NFTokenID,
			Issuer:      token.Issuer,
			Taxon:       token.NFTokenTaxon,
			Serial:      token.Serial,
			URI:         uri,
			Flags:       token.Flags,
			TransferFee: amount.NFTFeeFromWire(token.TransferFee),
		})
	}
	return nfts, nil
}
