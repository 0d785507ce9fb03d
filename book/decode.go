package book

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/ObiajuluM/myrkle/amount"
)

// The two query kinds name the same offer fields differently.  One
// decode path with a per-kind field table keeps the mapping in one
// place instead of two near-identical decoders.

type sourceKind int

const (
	bookQuery    sourceKind = iota // book_offers: ledger-entry casing
	accountQuery                   // account_offers: lowercase API casing
)

// fieldMap names the raw-record key for each offer attribute.  Empty
// means the query kind never reports that attribute.
type fieldMap struct {
	creator    string
	offerID    string
	flags      string
	sequence   string
	quality    string
	takerPays  string
	takerGets  string
	ownerFunds string
}

var fieldMaps = map[sourceKind]fieldMap{
	bookQuery: {
		creator:    "Account",
		offerID:    "index",
		flags:      "Flags",
		sequence:   "Sequence",
		quality:    "quality",
		takerPays:  "TakerPays",
		takerGets:  "TakerGets",
		ownerFunds: "owner_funds",
	},
	accountQuery: {
		flags:     "flags",
		sequence:  "seq",
		quality:   "quality",
		takerPays: "taker_pays",
		takerGets: "taker_gets",
	},
}

func detectKind(fields map[string]json.RawMessage) sourceKind {
	if _, ok := fields["TakerPays"]; ok {
		return bookQuery
	}
	return accountQuery
}

func decodeRecord(raw json.RawMessage) (Offer, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Offer{}, errors.Wrapf(ErrMalformedOffer, "not an object: %v", err)
	}

	m := fieldMaps[detectKind(fields)]
	var offer Offer

	paysRaw, ok := fields[m.takerPays]
	if !ok {
		return Offer{}, errors.Wrapf(ErrMalformedOffer, "missing %s", m.takerPays)
	}
	getsRaw, ok := fields[m.takerGets]
	if !ok {
		return Offer{}, errors.Wrapf(ErrMalformedOffer, "missing %s", m.takerGets)
	}
	qualityRaw, ok := fields[m.quality]
	if !ok {
		return Offer{}, errors.Wrapf(ErrMalformedOffer, "missing %s", m.quality)
	}

	var err error
	offer.TakerPays, err = amount.DecodeWire(paysRaw)
	if err != nil {
		return Offer{}, errors.Wrapf(ErrMalformedOffer, "%s: %v", m.takerPays, err)
	}
	offer.TakerGets, err = amount.DecodeWire(getsRaw)
	if err != nil {
		return Offer{}, errors.Wrapf(ErrMalformedOffer, "%s: %v", m.takerGets, err)
	}

	offer.Quality, err = decodeQuality(qualityRaw)
	if err != nil {
		return Offer{}, err
	}

	if err := decodeUint32Field(fields, m.flags, &offer.Flags); err != nil {
		return Offer{}, err
	}
	if err := decodeUint32Field(fields, m.sequence, &offer.Sequence); err != nil {
		return Offer{}, err
	}
	if m.creator != "" {
		if raw, ok := fields[m.creator]; ok {
			if err := json.Unmarshal(raw, &offer.Creator); err != nil {
				return Offer{}, errors.Wrapf(ErrMalformedOffer, "bad %s", m.creator)
			}
		}
	}
	if m.offerID != "" {
		if raw, ok := fields[m.offerID]; ok {
			if err := json.Unmarshal(raw, &offer.OfferID); err != nil {
				return Offer{}, errors.Wrapf(ErrMalformedOffer, "bad %s", m.offerID)
			}
		}
	}
	if m.ownerFunds != "" {
		if raw, ok := fields[m.ownerFunds]; ok {
			funds, err := decodeOwnerFunds(raw, offer.TakerGets)
			if err != nil {
				return Offer{}, err
			}
			offer.CreatorLiquidity = &funds
		}
	}

	return offer, nil
}

// decodeQuality parses the ledger's quality string without losing
// precision.  account_offers reports it as a string; some ledger dumps
// carry it as a bare number, which is accepted too.
func decodeQuality(raw json.RawMessage) (decimal.Decimal, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		// not a string; fall back to the raw token
		s = string(raw)
	}
	q, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Wrapf(ErrMalformedOffer, "bad quality %q", s)
	}
	return q, nil
}

// decodeOwnerFunds interprets the owner_funds string in the taker-gets
// asset: a drop count when taker-gets is native, a decimal value
// otherwise.
func decodeOwnerFunds(raw json.RawMessage, gets amount.Amount) (amount.Amount, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return amount.Amount{}, errors.Wrap(ErrMalformedOffer, "bad owner_funds")
	}
	value, err := decimal.NewFromString(s)
	if err != nil {
		return amount.Amount{}, errors.Wrapf(ErrMalformedOffer, "bad owner_funds %q", s)
	}
	if gets.IsNative {
		if !value.IsInteger() {
			return amount.Amount{}, errors.Wrapf(ErrMalformedOffer, "native owner_funds %q not a drop count", s)
		}
		return amount.Native(value.IntPart()), nil
	}
	return amount.Issued(gets.Currency, gets.Issuer, value), nil
}

func decodeUint32Field(fields map[string]json.RawMessage, key string, dst *uint32) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.Wrapf(ErrMalformedOffer, "bad %s", key)
	}
	return nil
}
