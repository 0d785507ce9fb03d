// Package book decodes raw offer records from rippled queries and
// produces two views: a single account's resting liquidity, and a
// ranked order book for an asset pair.
//
// Records arrive in one of two field casings depending on which query
// produced them (book_offers capitalizes ledger fields, account_offers
// does not).  Both are accepted; callers never need to know the source.
// Offers are ranked by the ledger's own quality field, compared as an
// arbitrary-precision decimal.  Recomputing the ratio from the amounts
// in floating point can disagree with the ledger's rounding, so the
// raw string is authoritative end to end.
package book

import (
	"encoding/json"
	"sort"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/ObiajuluM/myrkle/amount"
)

// Objective selects the direction of an order-book ranking.
type Objective int

const (
	// BestForBuyer ranks ascending quality: the cheapest price for
	// whoever supplies the taker-pays side comes first.
	BestForBuyer Objective = iota
	// BestForSeller ranks descending quality: the highest return for
	// whoever provides the taker-gets side comes first.
	BestForSeller
)

func (o Objective) String() string {
	if o == BestForSeller {
		return "best-for-seller"
	}
	return "best-for-buyer"
}

// Ledger Offer node flags.
const (
	lsfPassive uint32 = 0x00010000
	lsfSell    uint32 = 0x00020000
)

var ErrMalformedOffer = errors.New("malformed offer record")

// Offer is one resting order, decoded and normalized.
type Offer struct {
	Creator   string // absent on an account's own liquidity listing
	OfferID   string // ledger entry index, absent on account listings
	Flags     uint32
	Sequence  uint32 // cancellation key, unique per creator
	Quality   decimal.Decimal
	TakerPays amount.Amount
	TakerGets amount.Amount
	// Rate is TakerGets/TakerPays, derived for display and secondary
	// sorting only; Quality is the authoritative ranking key.
	Rate decimal.Decimal
	// CreatorLiquidity is the creator's reported holding of the
	// taker-gets asset.  nil when the query did not report it; zero is
	// a valid reported value and is distinct from absent.
	CreatorLiquidity *amount.Amount
}

// Passive reports whether the offer rests on the book without
// consuming exact matches.
func (o Offer) Passive() bool {
	return o.Flags&lsfPassive != 0
}

// Ranked is an Offer with its 1-based position in a sorted book.
type Ranked struct {
	Rank int
	Offer
}

// Issue records one record that could not be decoded.  Batches never
// abort on a bad record; the caller receives the good offers plus the
// issues.
type Issue struct {
	Index int // position in the input batch
	Err   error
}

// ListAccountLiquidity filters records to the account's passive
// liquidity offers, in input order.  Malformed records are skipped and
// reported.
func ListAccountLiquidity(records []json.RawMessage) ([]Offer, []Issue) {
	var offers []Offer
	var issues []Issue
	for i, raw := range records {
		offer, err := decodeRecord(raw)
		if err != nil {
			issues = append(issues, Issue{Index: i, Err: err})
			continue
		}
		if offer.Flags&lsfPassive != lsfPassive {
			continue
		}
		if offer.TakerPays.Value.IsZero() {
			issues = append(issues, Issue{
				Index: i,
				Err:   errors.Wrapf(ErrMalformedOffer, "offer %d pays zero, rate undefined", offer.Sequence),
			})
			continue
		}
		offer.Rate = offer.TakerGets.Value.Div(offer.TakerPays.Value)
		offers = append(offers, offer)
	}
	return offers, issues
}

// RankOrderBook decodes every record and sorts by the ledger quality
// field under the given objective.  Ties keep their input order, so
// the first offer seen at a given quality ranks ahead of later ones.
func RankOrderBook(records []json.RawMessage, objective Objective) ([]Ranked, []Issue) {
	var offers []Offer
	var issues []Issue
	for i, raw := range records {
		offer, err := decodeRecord(raw)
		if err != nil {
			issues = append(issues, Issue{Index: i, Err: err})
			continue
		}
		if !offer.TakerPays.Value.IsZero() {
			offer.Rate = offer.TakerGets.Value.Div(offer.TakerPays.Value)
		}
		offers = append(offers, offer)
	}

	sort.SliceStable(offers, func(i, j int) bool {
		cmp := offers[i].Quality.Cmp(offers[j].Quality)
		if objective == BestForSeller {
			return cmp > 0
		}
		return cmp < 0
	})

	ranked := make([]Ranked, len(offers))
	for i, offer := range offers {
		ranked[i] = Ranked{Rank: i + 1, Offer: offer}
	}
	return ranked, issues
}
