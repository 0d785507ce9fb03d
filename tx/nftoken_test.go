package tx

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func testStamp() WireStamp {
	tag := uint32(10011001)
	return WireStamp{
		SourceTag: &tag,
		MemoType:  "client",
		MemoData:  "https://example.com",
		Fee:       "12",
	}
}

func TestNFTokenMintWire(t *testing.T) {
	fee, _ := decimal.NewFromString("5")
	mint, err := NewNFTokenMint(mustAccount(t, testAddress), MintConfig{
		Taxon:        13,
		URI:          "ipfs://QmTest",
		Transferable: true,
		TransferFee:  fee,
	}, testStamp())
	if err != nil {
		t.Fatal(err)
	}

	jb, err := json.Marshal(mint)
	if err != nil {
		t.Fatal(err)
	}
	wire := string(jb)

	if !strings.Contains(wire, `"TransactionType":"NFTokenMint"`) {
		t.Errorf("missing transaction type: %s", wire)
	}
	if mint.TransferFee == nil || *mint.TransferFee != 5000 {
		t.Errorf("wanted wire transfer fee 5000, got %v", mint.TransferFee)
	}
	if mint.Flags&TfTransferable == 0 {
		t.Error("wanted transferable flag")
	}
	// URI is hex on the wire
	if strings.Contains(wire, "ipfs://") {
		t.Errorf("URI not hex encoded: %s", wire)
	}
	if len(mint.Memos) != 1 {
		t.Fatalf("wanted 1 memo, got %d", len(mint.Memos))
	}
	if strings.Contains(wire, "https://example.com") {
		t.Errorf("memo not hex encoded: %s", wire)
	}
}

func TestNFTokenMintFeeRequiresTransferable(t *testing.T) {
	fee, _ := decimal.NewFromString("5")
	_, err := NewNFTokenMint(mustAccount(t, testAddress), MintConfig{
		Taxon:       13,
		TransferFee: fee,
	}, WireStamp{})
	if err == nil {
		t.Error("transfer fee without transferable flag should be rejected")
	}
}

func TestNFTokenGift(t *testing.T) {
	gift, err := NewNFTokenGift(mustAccount(t, testAddress), "000813886377BBDA", mustAccount(t, testIssuer), testStamp())
	if err != nil {
		t.Fatal(err)
	}
	if gift.Amount != "0" {
		t.Errorf("gift offer must be zero amount, got %q", gift.Amount)
	}
	if gift.Destination != testIssuer {
		t.Errorf("wanted directed offer to %s, got %s", testIssuer, gift.Destination)
	}
	if gift.Flags&tfSellNFToken == 0 {
		t.Error("gift must be a sell offer")
	}
}

func TestNFTokenBurn(t *testing.T) {
	burn, err := NewNFTokenBurn(mustAccount(t, testAddress), "000813886377BBDA", testIssuer, testStamp())
	if err != nil {
		t.Fatal(err)
	}
	if burn.NFTokenID != "000813886377BBDA" {
		t.Errorf("unexpected token id %q", burn.NFTokenID)
	}
	if burn.Owner != testIssuer {
		t.Errorf("wanted owner %s, got %s", testIssuer, burn.Owner)
	}

	encoded, err := json.Marshal(burn)
	if err != nil {
		t.Fatal(err)
	}
	// no owner field when burning from the sender's own wallet
	burn, err = NewNFTokenBurn(mustAccount(t, testAddress), "000813886377BBDA", "", testStamp())
	if err != nil {
		t.Fatal(err)
	}
	encoded, err = json.Marshal(burn)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(encoded, []byte(`"Owner"`)) {
		t.Error("empty owner must be omitted from the wire form")
	}
}

func TestNFTokenAccept(t *testing.T) {
	accept, err := NewNFTokenAccept(mustAccount(t, testAddress), "B6B7FC62", testStamp())
	if err != nil {
		t.Fatal(err)
	}
	if accept.NFTokenSellOffer != "B6B7FC62" {
		t.Errorf("unexpected sell offer %q", accept.NFTokenSellOffer)
	}
	if accept.NFTokenBuyOffer != "" {
		t.Error("accept of a directed gift names no buy offer")
	}
}

func TestAMMVoteFee(t *testing.T) {
	tradingFee, _ := decimal.NewFromString("0.25")
	vote, err := NewAMMVote(mustAccount(t, testAddress), WireXRPAsset(), mustToken(t), tradingFee, testStamp())
	if err != nil {
		t.Fatal(err)
	}
	if vote.TradingFee != 250 {
		t.Errorf("wanted wire fee 250, got %d", vote.TradingFee)
	}

	outOfRange, _ := decimal.NewFromString("1.5")
	if _, err := NewAMMVote(mustAccount(t, testAddress), WireXRPAsset(), mustToken(t), outOfRange, testStamp()); err == nil {
		t.Error("fee above 1 percent should be rejected")
	}
}

func TestAMMCreateWire(t *testing.T) {
	xrp, err := WireXRP(decimal.NewFromInt(100))
	if err != nil {
		t.Fatal(err)
	}
	token, err := WireToken("MYR", testIssuer, "5000")
	if err != nil {
		t.Fatal(err)
	}
	tradingFee, _ := decimal.NewFromString("0.5")

	create, err := NewAMMCreate(mustAccount(t, testAddress), xrp, token, tradingFee, testStamp())
	if err != nil {
		t.Fatal(err)
	}
	if create.TradingFee != 500 {
		t.Errorf("wanted wire trading fee 500, got %d", create.TradingFee)
	}

	jb, err := json.Marshal(create)
	if err != nil {
		t.Fatal(err)
	}
	wire := string(jb)
	// native side is a drop string, issued side an object
	if !strings.Contains(wire, `"Amount":"100000000"`) {
		t.Errorf("native amount not in drops: %s", wire)
	}
	if !strings.Contains(wire, `"value":"5000"`) {
		t.Errorf("issued amount missing: %s", wire)
	}
	if !strings.Contains(wire, `"currency":"MYR"`) {
		t.Errorf("short code must travel plain: %s", wire)
	}
}

func TestWireXRPAssetOmitsIssuer(t *testing.T) {
	jb, err := json.Marshal(WireXRPAsset())
	if err != nil {
		t.Fatal(err)
	}
	// rippled rejects an issuer field on the native asset
	if string(jb) != `{"currency":"XRP"}` {
		t.Errorf("unexpected native asset definition %s", jb)
	}
}

func TestAMMBidAuthAccounts(t *testing.T) {
	bid, err := NewAMMBid(mustAccount(t, testAddress), WireXRPAsset(), mustToken(t), nil, nil,
		[]AuthAccount{NewAuthAccount(mustAccount(t, testIssuer))}, WireStamp{})
	if err != nil {
		t.Fatal(err)
	}
	if len(bid.AuthAccounts) != 1 {
		t.Fatalf("wanted 1 auth account, got %d", len(bid.AuthAccounts))
	}
	if bid.AuthAccounts[0].AuthAccount.Account != testIssuer {
		t.Errorf("unexpected auth account %q", bid.AuthAccounts[0].AuthAccount.Account)
	}
	jb, err := json.Marshal(bid)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(jb), `"BidMin"`) {
		t.Errorf("nil bid bounds must be omitted: %s", jb)
	}
}

func mustToken(t *testing.T) WireAmount {
	t.Helper()
	token, err := WireToken("MYR", testIssuer, "")
	if err != nil {
		t.Fatal(err)
	}
	return token
}
