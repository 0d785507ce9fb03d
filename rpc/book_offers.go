package rpc

import "encoding/json"

// book_offers params name each side of the pair as a currency/issuer
// object; the native side carries currency "XRP" and no issuer.

type Asset struct {
	Currency string `json:"currency"`
	Issuer   string `json:"issuer,omitempty"`
}

// NativeAsset is the XRP side of a book.
func NativeAsset() Asset {
	return Asset{Currency: "XRP"}
}

type BookOffersParams struct {
	TakerGets   Asset  `json:"taker_gets"`
	TakerPays   Asset  `json:"taker_pays"`
	LedgerIndex string `json:"ledger_index,omitempty"`
	Limit       uint32 `json:"limit,omitempty"`
}

// Offers stay raw; book_offers uses the capitalized ledger-entry
// casing which the book package detects and decodes.
type BookOffersResult struct {
	Result
	LedgerCurrentIndex uint32            `json:"ledger_current_index"`
	Offers             []json.RawMessage `json:"offers"`
}

// BookOffers fetches the order book where takers pay `pays` and
// receive `gets`.
func (client Client) BookOffers(pays, gets Asset) (*BookOffersResult, error) {
	result := &BookOffersResult{}
	err := client.call("book_offers", BookOffersParams{
		TakerGets:   gets,
		TakerPays:   pays,
		LedgerIndex: "validated",
	}, result)
	return result, err
}
