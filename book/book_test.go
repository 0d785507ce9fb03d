package book

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

// bookRecord builds a book_offers-style record (ledger-entry casing).
func bookRecord(seq int, quality string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{
		"Account": "rMWUykAmNQDaM9poSes8VLDZDDKEbmo7MX",
		"Flags": 0,
		"Sequence": %d,
		"index": "1AEFB57B%04d",
		"quality": %q,
		"TakerGets": {"currency": "USD", "issuer": "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq", "value": "100"},
		"TakerPays": "50000000"
	}`, seq, seq, quality))
}

// accountRecord builds an account_offers-style record (lowercase
// casing).
func accountRecord(seq int, flags uint32, pays, gets string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{
		"flags": %d,
		"seq": %d,
		"quality": "2",
		"taker_pays": %s,
		"taker_gets": %s
	}`, flags, seq, pays, gets))
}

func TestRankOrderBook(t *testing.T) {
	records := []json.RawMessage{
		bookRecord(1, "3"),
		bookRecord(2, "1"),
		bookRecord(3, "2"),
	}

	ranked, issues := RankOrderBook(records, BestForSeller)
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	wantSeller := []string{"3", "2", "1"}
	for i, want := range wantSeller {
		if ranked[i].Quality.String() != want {
			t.Errorf("BestForSeller rank %d: wanted quality %s, got %s", i+1, want, ranked[i].Quality)
		}
		if ranked[i].Rank != i+1 {
			t.Errorf("wanted rank %d, got %d", i+1, ranked[i].Rank)
		}
	}

	ranked, _ = RankOrderBook(records, BestForBuyer)
	wantBuyer := []string{"1", "2", "3"}
	for i, want := range wantBuyer {
		if ranked[i].Quality.String() != want {
			t.Errorf("BestForBuyer rank %d: wanted quality %s, got %s", i+1, want, ranked[i].Quality)
		}
	}
}

func TestRankOrderBookTieStability(t *testing.T) {
	records := []json.RawMessage{
		bookRecord(10, "2"),
		bookRecord(20, "2"),
		bookRecord(30, "1"),
	}
	for _, objective := range []Objective{BestForBuyer, BestForSeller} {
		ranked, _ := RankOrderBook(records, objective)
		var first, second int
		for i, offer := range ranked {
			if offer.Sequence == 10 {
				first = i
			}
			if offer.Sequence == 20 {
				second = i
			}
		}
		if first > second {
			t.Errorf("%s: equal-quality offers reordered, seq 10 at %d, seq 20 at %d", objective, first, second)
		}
	}
}

func TestRankOrderBookPartialFailure(t *testing.T) {
	records := []json.RawMessage{
		bookRecord(1, "3"),
		json.RawMessage(`{"Account": "rMWUykAmNQDaM9poSes8VLDZDDKEbmo7MX", "Flags": 0, "Sequence": 2, "quality": "1", "TakerGets": "1000"}`),
		bookRecord(3, "2"),
	}
	ranked, issues := RankOrderBook(records, BestForSeller)
	if len(ranked) != 2 {
		t.Errorf("wanted 2 ranked offers, got %d", len(ranked))
	}
	if len(issues) != 1 {
		t.Fatalf("wanted 1 issue, got %d", len(issues))
	}
	if issues[0].Index != 1 {
		t.Errorf("wanted issue at record 1, got %d", issues[0].Index)
	}
	if errors.Cause(issues[0].Err) != ErrMalformedOffer {
		t.Errorf("wanted ErrMalformedOffer, got %v", issues[0].Err)
	}
}

func TestListAccountLiquidityFilter(t *testing.T) {
	gets := `{"currency": "USD", "issuer": "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq", "value": "100"}`
	records := []json.RawMessage{
		accountRecord(1, 0x00010000, `"50000000"`, gets),
		accountRecord(2, 0x00000000, `"50000000"`, gets),
	}
	offers, issues := ListAccountLiquidity(records)
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if len(offers) != 1 {
		t.Fatalf("wanted 1 passive offer, got %d", len(offers))
	}
	if offers[0].Sequence != 1 {
		t.Errorf("wanted seq 1, got %d", offers[0].Sequence)
	}
	if !offers[0].Passive() {
		t.Error("retained offer should report passive")
	}
}

func TestListAccountLiquidityRate(t *testing.T) {
	gets := `{"currency": "USD", "issuer": "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq", "value": "100"}`
	records := []json.RawMessage{
		accountRecord(1, 0x00010000, `"50000000"`, gets),
	}
	offers, _ := ListAccountLiquidity(records)
	if len(offers) != 1 {
		t.Fatal("wanted 1 offer")
	}
	// 100 USD for 50 XRP
	if offers[0].Rate.String() != "2" {
		t.Errorf("wanted rate 2, got %s", offers[0].Rate)
	}
}

func TestListAccountLiquidityZeroPays(t *testing.T) {
	gets := `{"currency": "USD", "issuer": "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq", "value": "100"}`
	records := []json.RawMessage{
		accountRecord(7, 0x00010000, `"0"`, gets),
	}
	offers, issues := ListAccountLiquidity(records)
	if len(offers) != 0 {
		t.Errorf("wanted no offers, got %d", len(offers))
	}
	if len(issues) != 1 {
		t.Fatalf("wanted 1 issue, got %d", len(issues))
	}
	if errors.Cause(issues[0].Err) != ErrMalformedOffer {
		t.Errorf("wanted ErrMalformedOffer, got %v", issues[0].Err)
	}
}

func TestDecodeDualAmountShapes(t *testing.T) {
	// the same offer through both query casings decodes to the same
	// semantic model
	fromBook, err := decodeRecord(bookRecord(5, "0.5"))
	if err != nil {
		t.Fatal(err)
	}
	fromAccount, err := decodeRecord(accountRecord(5, 0x00010000,
		`"50000000"`,
		`{"currency": "USD", "issuer": "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq", "value": "100"}`))
	if err != nil {
		t.Fatal(err)
	}

	for _, offer := range []Offer{fromBook, fromAccount} {
		if !offer.TakerPays.IsNative {
			t.Error("taker_pays should decode native")
		}
		if offer.TakerPays.Value.String() != "50" {
			t.Errorf("wanted 50 XRP, got %s", offer.TakerPays.Value)
		}
		if offer.TakerGets.IsNative || offer.TakerGets.Currency != "USD" {
			t.Errorf("taker_gets should decode issued USD, got %+v", offer.TakerGets)
		}
		if offer.TakerGets.Value.String() != "100" {
			t.Errorf("wanted 100 USD, got %s", offer.TakerGets.Value)
		}
	}

	// book casing carries identity fields the account casing lacks
	if fromBook.Creator != "rMWUykAmNQDaM9poSes8VLDZDDKEbmo7MX" {
		t.Errorf("unexpected creator %q", fromBook.Creator)
	}
	if fromBook.OfferID == "" {
		t.Error("book record should carry an offer ID")
	}
}

func TestDecodeOwnerFunds(t *testing.T) {
	record := json.RawMessage(`{
		"Account": "rMWUykAmNQDaM9poSes8VLDZDDKEbmo7MX",
		"Flags": 0,
		"Sequence": 9,
		"quality": "0.5",
		"TakerGets": {"currency": "USD", "issuer": "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq", "value": "100"},
		"TakerPays": "50000000",
		"owner_funds": "73.5"
	}`)
	offer, err := decodeRecord(record)
	if err != nil {
		t.Fatal(err)
	}
	if offer.CreatorLiquidity == nil {
		t.Fatal("wanted creator liquidity")
	}
	if offer.CreatorLiquidity.Currency != "USD" || offer.CreatorLiquidity.Value.String() != "73.5" {
		t.Errorf("wanted 73.5 USD, got %s", offer.CreatorLiquidity)
	}
}
