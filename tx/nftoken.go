package tx

import (
	"github.com/pkg/errors"
	"github.com/rubblelabs/ripple/data"
	"github.com/shopspring/decimal"

	"github.com/ObiajuluM/myrkle/amount"
)

// The rubblelabs vintage in use predates the NFToken and AMM
// transaction types, so those composers build the JSON wire shape
// directly.  The structs marshal to exactly what rippled's submit and
// sign methods accept.

// NFTokenMint transaction flags.
const (
	TfBurnable     uint32 = 0x00000001 // issuer may burn the token
	TfOnlyXRP      uint32 = 0x00000002 // token trades against XRP only
	TfTransferable uint32 = 0x00000008 // token may move between non-issuer accounts
)

// WireStamp carries the fields stamped onto every wire-built
// transaction, mirroring what Stamp does for rubblelabs transactions.
type WireStamp struct {
	SourceTag *uint32
	MemoType  string
	MemoData  string
	Fee       string // drops, empty to let the signer autofill
}

type wireMemo struct {
	Memo struct {
		MemoType string `json:"MemoType,omitempty"`
		MemoData string `json:"MemoData,omitempty"`
	} `json:"Memo"`
}

func (s WireStamp) memos() ([]wireMemo, error) {
	if s.MemoData == "" {
		return nil, nil
	}
	var m wireMemo
	var err error
	if s.MemoType != "" {
		m.Memo.MemoType, err = amount.EncodeText(s.MemoType)
		if err != nil {
			return nil, err
		}
	}
	m.Memo.MemoData, err = amount.EncodeText(s.MemoData)
	if err != nil {
		return nil, err
	}
	return []wireMemo{m}, nil
}

type NFTokenMint struct {
	TransactionType string     `json:"TransactionType"`
	Account         string     `json:"Account"`
	NFTokenTaxon    uint32     `json:"NFTokenTaxon"`
	URI             string     `json:"URI,omitempty"`
	TransferFee     *uint16    `json:"TransferFee,omitempty"`
	Flags           uint32     `json:"Flags,omitempty"`
	Fee             string     `json:"Fee,omitempty"`
	SourceTag       *uint32    `json:"SourceTag,omitempty"`
	Memos           []wireMemo `json:"Memos,omitempty"`
}

// MintConfig names the minting choices.  Transferable tokens may move
// between holders; OnlyXRP restricts trading to XRP; IssuerBurnable
// lets the issuer burn the token even while another account holds it.
type MintConfig struct {
	Taxon          uint32
	URI            string
	Transferable   bool
	OnlyXRP        bool
	IssuerBurnable bool
	// TransferFee is a percentage, 0-50.  Requires Transferable.
	TransferFee decimal.Decimal
}

func NewNFTokenMint(issuer data.Account, cfg MintConfig, stamp WireStamp) (*NFTokenMint, error) {
	tx := &NFTokenMint{
		TransactionType: "NFTokenMint",
		Account:         issuer.String(),
		NFTokenTaxon:    cfg.Taxon,
		Fee:             stamp.Fee,
		SourceTag:       stamp.SourceTag,
	}
	if cfg.Transferable {
		tx.Flags |= TfTransferable
	}
	if cfg.OnlyXRP {
		tx.Flags |= TfOnlyXRP
	}
	if cfg.IssuerBurnable {
		tx.Flags |= TfBurnable
	}
	if cfg.URI != "" {
		uri, err := amount.EncodeText(cfg.URI)
		if err != nil {
			return nil, err
		}
		tx.URI = uri
	}
	if !cfg.TransferFee.IsZero() {
		if !cfg.Transferable {
			return nil, errors.New("transfer fee requires a transferable token")
		}
		fee, err := amount.NFTFeeToWire(cfg.TransferFee)
		if err != nil {
			return nil, err
		}
		tx.TransferFee = &fee
	}
	var err error
	tx.Memos, err = stamp.memos()
	return tx, err
}

type NFTokenBurn struct {
	TransactionType string     `json:"TransactionType"`
	Account         string     `json:"Account"`
	NFTokenID       string     `json:"NFTokenID"`
	Owner           string     `json:"Owner,omitempty"`
	Fee             string     `json:"Fee,omitempty"`
	SourceTag       *uint32    `json:"SourceTag,omitempty"`
	Memos           []wireMemo `json:"Memos,omitempty"`
}

// NewNFTokenBurn destroys an NFT.  Owner names the holder when the
// token is not in the sender's wallet; only the issuer and holder may
// burn.
func NewNFTokenBurn(sender data.Account, tokenID, owner string, stamp WireStamp) (*NFTokenBurn, error) {
	tx := &NFTokenBurn{
		TransactionType: "NFTokenBurn",
		Account:         sender.String(),
		NFTokenID:       tokenID,
		Owner:           owner,
		Fee:             stamp.Fee,
		SourceTag:       stamp.SourceTag,
	}
	var err error
	tx.Memos, err = stamp.memos()
	return tx, err
}

// NFTokenCreateOffer flag: the offer sells rather than buys.
const tfSellNFToken uint32 = 0x00000001

type NFTokenCreateOffer struct {
	TransactionType string     `json:"TransactionType"`
	Account         string     `json:"Account"`
	NFTokenID       string     `json:"NFTokenID"`
	Amount          string     `json:"Amount"`
	Destination     string     `json:"Destination,omitempty"`
	Flags           uint32     `json:"Flags,omitempty"`
	Fee             string     `json:"Fee,omitempty"`
	SourceTag       *uint32    `json:"SourceTag,omitempty"`
	Memos           []wireMemo `json:"Memos,omitempty"`
}

// NewNFTokenGift composes the zero-amount sell offer used to hand an
// NFT to a specific account; the receiver accepts it to take delivery.
func NewNFTokenGift(sender data.Account, tokenID string, receiver data.Account, stamp WireStamp) (*NFTokenCreateOffer, error) {
	tx := &NFTokenCreateOffer{
		TransactionType: "NFTokenCreateOffer",
		Account:         sender.String(),
		NFTokenID:       tokenID,
		Amount:          "0",
		Destination:     receiver.String(),
		Flags:           tfSellNFToken,
		Fee:             stamp.Fee,
		SourceTag:       stamp.SourceTag,
	}
	var err error
	tx.Memos, err = stamp.memos()
	return tx, err
}

type NFTokenAcceptOffer struct {
	TransactionType  string     `json:"TransactionType"`
	Account          string     `json:"Account"`
	NFTokenSellOffer string     `json:"NFTokenSellOffer,omitempty"`
	NFTokenBuyOffer  string     `json:"NFTokenBuyOffer,omitempty"`
	Fee              string     `json:"Fee,omitempty"`
	SourceTag        *uint32    `json:"SourceTag,omitempty"`
	Memos            []wireMemo `json:"Memos,omitempty"`
}

// NewNFTokenAccept accepts a directed sell offer, completing delivery.
func NewNFTokenAccept(receiver data.Account, sellOfferID string, stamp WireStamp) (*NFTokenAcceptOffer, error) {
	tx := &NFTokenAcceptOffer{
		TransactionType:  "NFTokenAcceptOffer",
		Account:          receiver.String(),
		NFTokenSellOffer: sellOfferID,
		Fee:              stamp.Fee,
		SourceTag:        stamp.SourceTag,
	}
	var err error
	tx.Memos, err = stamp.memos()
	return tx, err
}
