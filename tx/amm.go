package tx

import (
	"encoding/json"

	"github.com/rubblelabs/ripple/data"
	"github.com/shopspring/decimal"

	"github.com/ObiajuluM/myrkle/amount"
)

// AMM transactions, like the NFToken ones, are built at the wire level.

// WireAmount marshals either amount shape: a drop-count string for
// XRP, an object for issued currencies.
type WireAmount struct {
	xrpDrops string
	issued   *wireIssued
}

type wireIssued struct {
	Currency string `json:"currency"`
	// empty on the native asset definition; rippled rejects an
	// issuer field there
	Issuer string `json:"issuer,omitempty"`
	Value  string `json:"value,omitempty"`
}

func (w WireAmount) MarshalJSON() ([]byte, error) {
	if w.issued != nil {
		return json.Marshal(w.issued)
	}
	return json.Marshal(w.xrpDrops)
}

// WireXRP builds the wire amount for whole XRP, rejecting sub-drop
// precision.
func WireXRP(xrp decimal.Decimal) (WireAmount, error) {
	drops, err := amount.DecimalToDrops(xrp)
	if err != nil {
		return WireAmount{}, err
	}
	return WireAmount{xrpDrops: decimal.NewFromInt(drops).String()}, nil
}

// WireToken builds the wire amount for an issued currency.  Pass an
// empty value for asset definitions (AMMVote, AMMBid) where only the
// currency pair is named.
func WireToken(symbol, issuer, value string) (WireAmount, error) {
	code, err := amount.SymbolToWire(symbol)
	if err != nil {
		return WireAmount{}, err
	}
	return WireAmount{issued: &wireIssued{Currency: code, Issuer: issuer, Value: value}}, nil
}

// WireXRPAsset is the asset definition for the native side of a pool.
func WireXRPAsset() WireAmount {
	return WireAmount{issued: &wireIssued{Currency: "XRP"}}
}

type AMMCreate struct {
	TransactionType string     `json:"TransactionType"`
	Account         string     `json:"Account"`
	Amount          WireAmount `json:"Amount"`
	Amount2         WireAmount `json:"Amount2"`
	TradingFee      uint16     `json:"TradingFee"`
	Fee             string     `json:"Fee,omitempty"`
	SourceTag       *uint32    `json:"SourceTag,omitempty"`
	Memos           []wireMemo `json:"Memos,omitempty"`
}

// NewAMMCreate composes the transaction funding a new liquidity pool
// for the asset pair.  The trading fee is a percentage, at most 1, in
// steps the TradingFee encoding can represent.
func NewAMMCreate(creator data.Account, asset1, asset2 WireAmount, tradingFee decimal.Decimal, stamp WireStamp) (*AMMCreate, error) {
	fee, err := amount.TradingFeeToWire(tradingFee)
	if err != nil {
		return nil, err
	}
	tx := &AMMCreate{
		TransactionType: "AMMCreate",
		Account:         creator.String(),
		Amount:          asset1,
		Amount2:         asset2,
		TradingFee:      fee,
		Fee:             stamp.Fee,
		SourceTag:       stamp.SourceTag,
	}
	tx.Memos, err = stamp.memos()
	return tx, err
}

type AMMVote struct {
	TransactionType string     `json:"TransactionType"`
	Account         string     `json:"Account"`
	Asset           WireAmount `json:"Asset"`
	Asset2          WireAmount `json:"Asset2"`
	TradingFee      uint16     `json:"TradingFee"`
	Fee             string     `json:"Fee,omitempty"`
	SourceTag       *uint32    `json:"SourceTag,omitempty"`
	Memos           []wireMemo `json:"Memos,omitempty"`
}

// NewAMMVote composes a liquidity provider's vote on the pool fee.
// Votes are weighted by LP token holdings.
func NewAMMVote(voter data.Account, asset1, asset2 WireAmount, tradingFee decimal.Decimal, stamp WireStamp) (*AMMVote, error) {
	fee, err := amount.TradingFeeToWire(tradingFee)
	if err != nil {
		return nil, err
	}
	tx := &AMMVote{
		TransactionType: "AMMVote",
		Account:         voter.String(),
		Asset:           asset1,
		Asset2:          asset2,
		TradingFee:      fee,
		Fee:             stamp.Fee,
		SourceTag:       stamp.SourceTag,
	}
	tx.Memos, err = stamp.memos()
	return tx, err
}

// AuthAccount names an account authorized to trade at the discounted
// fee while the bidder holds the auction slot.
type AuthAccount struct {
	AuthAccount struct {
		Account string `json:"Account"`
	} `json:"AuthAccount"`
}

func NewAuthAccount(account data.Account) AuthAccount {
	var a AuthAccount
	a.AuthAccount.Account = account.String()
	return a
}

type AMMBid struct {
	TransactionType string        `json:"TransactionType"`
	Account         string        `json:"Account"`
	Asset           WireAmount    `json:"Asset"`
	Asset2          WireAmount    `json:"Asset2"`
	BidMin          *WireAmount   `json:"BidMin,omitempty"`
	BidMax          *WireAmount   `json:"BidMax,omitempty"`
	AuthAccounts    []AuthAccount `json:"AuthAccounts,omitempty"`
	Fee             string        `json:"Fee,omitempty"`
	SourceTag       *uint32       `json:"SourceTag,omitempty"`
	Memos           []wireMemo    `json:"Memos,omitempty"`
}

// NewAMMBid composes a bid on the pool's auction slot.  Bids are paid
// in the pool's LP token.
func NewAMMBid(bidder data.Account, asset1, asset2 WireAmount, bidMin, bidMax *WireAmount, auth []AuthAccount, stamp WireStamp) (*AMMBid, error) {
	tx := &AMMBid{
		TransactionType: "AMMBid",
		Account:         bidder.String(),
		Asset:           asset1,
		Asset2:          asset2,
		BidMin:          bidMin,
		BidMax:          bidMax,
		AuthAccounts:    auth,
		Fee:             stamp.Fee,
		SourceTag:       stamp.SourceTag,
	}
	var err error
	tx.Memos, err = stamp.memos()
	return tx, err
}
