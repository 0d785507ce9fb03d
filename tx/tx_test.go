package tx

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rubblelabs/ripple/data"
	"github.com/shopspring/decimal"
)

const (
	testAddress  = "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"
	testIssuer   = "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq"
	testSequence = 42
)

func baseOptions() []Option {
	return []Option{
		SetAddress(testAddress),
		SetSequence(testSequence),
		SetFee(12),
	}
}

func TestPrepareRequiresSequence(t *testing.T) {
	_, err := NewPayment(SetAddress(testAddress))
	if err == nil {
		t.Error("wanted error for missing sequence")
	}
}

func TestStamp(t *testing.T) {
	tag := uint32(10011001)
	options := append(baseOptions(), Stamp(&tag, "client", "https://example.com")...)
	payment, err := NewPayment(append(options,
		SetDestination(mustAccount(t, testIssuer)),
		SetXRPAmount(decimal.NewFromInt(1)),
	)...)
	if err != nil {
		t.Fatal(err)
	}
	if payment.SourceTag == nil || *payment.SourceTag != tag {
		t.Errorf("wanted source tag %d, got %v", tag, payment.SourceTag)
	}
	if len(payment.Memos) != 1 {
		t.Fatalf("wanted 1 memo, got %d", len(payment.Memos))
	}
	if string(payment.Memos[0].Memo.MemoData) != "https://example.com" {
		t.Errorf("unexpected memo data %q", payment.Memos[0].Memo.MemoData)
	}
	if payment.Flags == nil || *payment.Flags&data.TxCanonicalSignature == 0 {
		t.Error("stamp should require canonical signature")
	}
}

func TestStampWithoutTagOrMemo(t *testing.T) {
	payment, err := NewPayment(append(append(baseOptions(), Stamp(nil, "", "")...),
		SetDestination(mustAccount(t, testIssuer)),
		SetXRPAmount(decimal.NewFromInt(1)),
	)...)
	if err != nil {
		t.Fatal(err)
	}
	if payment.SourceTag != nil {
		t.Errorf("wanted no source tag, got %d", *payment.SourceTag)
	}
	if len(payment.Memos) != 0 {
		t.Errorf("wanted no memos, got %d", len(payment.Memos))
	}
}

func TestSetXRPAmountPrecision(t *testing.T) {
	subDrop, _ := decimal.NewFromString("1.0000001")
	_, err := NewPayment(append(baseOptions(),
		SetDestination(mustAccount(t, testIssuer)),
		SetXRPAmount(subDrop),
	)...)
	if err == nil {
		t.Error("wanted error for sub-drop precision")
	}
}

func TestSetTokenAmount(t *testing.T) {
	payment, err := NewPayment(append(baseOptions(),
		SetDestination(mustAccount(t, testIssuer)),
		SetTokenAmount("MYR", testIssuer, "250"),
	)...)
	if err != nil {
		t.Fatal(err)
	}
	if payment.Amount.IsNative() {
		t.Error("wanted issued amount")
	}
	if payment.SendMax == nil {
		t.Error("token payment should mirror amount into SendMax")
	}
	if payment.Amount.Value.String() != "250" {
		t.Errorf("wanted 250, got %s", payment.Amount.Value)
	}
	// short codes travel plain; their hex expansion names a
	// different ledger asset
	if payment.Amount.Currency.String() != "MYR" {
		t.Errorf("wanted plain currency MYR, got %s", payment.Amount.Currency)
	}
}

func TestNewTokenBurn(t *testing.T) {
	burn, err := NewTokenBurn(mustAccount(t, testAddress), "MYR", testIssuer, "10",
		SetSequence(testSequence), SetFee(12))
	if err != nil {
		t.Fatal(err)
	}
	if burn.Destination.String() != testIssuer {
		t.Errorf("burn should pay the issuer, got %s", burn.Destination)
	}
}

func TestTrustSetNoRipple(t *testing.T) {
	trust, err := NewTrustSet(append(baseOptions(),
		SetLimit("MYR", testIssuer, "1000000"),
		SetNoRipple(true),
	)...)
	if err != nil {
		t.Fatal(err)
	}
	if trust.Flags == nil || *trust.Flags&data.TxSetNoRipple == 0 {
		t.Error("wanted no-ripple flag set")
	}
	if trust.LimitAmount.Value.String() != "1000000" {
		t.Errorf("wanted limit 1000000, got %s", trust.LimitAmount.Value)
	}
	if trust.LimitAmount.Currency.String() != "MYR" {
		t.Errorf("wanted plain currency MYR, got %s", trust.LimitAmount.Currency)
	}
}

func TestLiquidityOfferPassive(t *testing.T) {
	pays, _ := data.NewAmount("50000000")
	gets, _ := data.NewAmount("100/USD/" + testIssuer)
	expiry := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	offer, err := NewLiquidityOffer(mustAccount(t, testAddress), pays, gets, &expiry,
		SetSequence(testSequence), SetFee(12))
	if err != nil {
		t.Fatal(err)
	}
	if offer.Flags == nil || *offer.Flags&data.TxPassive == 0 {
		t.Error("liquidity offer should be passive")
	}
	if offer.Expiration == nil {
		t.Fatal("wanted expiration")
	}
	if got := FromRippleTime(*offer.Expiration); !got.Equal(expiry) {
		t.Errorf("expiration round trip: wanted %s, got %s", expiry, got)
	}
}

func TestBookSwapModes(t *testing.T) {
	pays, _ := data.NewAmount("50000000")
	gets, _ := data.NewAmount("100/USD/" + testIssuer)

	offer, err := NewBookSwap(mustAccount(t, testAddress), pays, gets,
		SwapMode{Sell: true, ImmediateOrCancel: true},
		SetSequence(testSequence), SetFee(12))
	if err != nil {
		t.Fatal(err)
	}
	if *offer.Flags&data.TxSell == 0 {
		t.Error("wanted sell flag")
	}
	if *offer.Flags&data.TxImmediateOrCancel == 0 {
		t.Error("wanted immediate-or-cancel flag")
	}
	if *offer.Flags&data.TxPassive != 0 {
		t.Error("book swap must not be passive")
	}
}

func TestOfferCancel(t *testing.T) {
	cancel, err := NewOfferCancel(append(baseOptions(), SetOfferSequence(7))...)
	if err != nil {
		t.Fatal(err)
	}
	if cancel.OfferSequence != 7 {
		t.Errorf("wanted offer sequence 7, got %d", cancel.OfferSequence)
	}
}

func TestAccountSetFlagToggle(t *testing.T) {
	set, err := NewAccountSet(append(baseOptions(),
		SetAccountFlag(AsfRequireAuth, true),
	)...)
	if err != nil {
		t.Fatal(err)
	}
	if set.SetFlag == nil || *set.SetFlag != AsfRequireAuth {
		t.Errorf("wanted SetFlag %d, got %v", AsfRequireAuth, set.SetFlag)
	}

	clear, err := NewAccountSet(append(baseOptions(),
		SetAccountFlag(AsfGlobalFreeze, false),
	)...)
	if err != nil {
		t.Fatal(err)
	}
	if clear.ClearFlag == nil || *clear.ClearFlag != AsfGlobalFreeze {
		t.Errorf("wanted ClearFlag %d, got %v", AsfGlobalFreeze, clear.ClearFlag)
	}
}

func TestAsfFlagByName(t *testing.T) {
	cases := []struct {
		name string
		want uint32
	}{
		{"require-auth", AsfRequireAuth},
		{"asfRequireAuth", AsfRequireAuth},
		{"lsfRequireAuth", AsfRequireAuth},
		{"default_ripple", AsfDefaultRipple},
		{"clawback", AsfAllowTrustLineClawback},
	}
	for _, c := range cases {
		got, ok := AsfFlagByName(c.name)
		if !ok || got != c.want {
			t.Errorf("AsfFlagByName(%q): wanted %d, got %d (ok=%v)", c.name, c.want, got, ok)
		}
	}
	if _, ok := AsfFlagByName("no-such-flag"); ok {
		t.Error("unknown flag should not resolve")
	}
}

func TestSetTickSizeRange(t *testing.T) {
	_, err := NewAccountSet(append(baseOptions(), SetTickSize(2))...)
	if err == nil {
		t.Error("tick size 2 should be rejected")
	}
	_, err = NewAccountSet(append(baseOptions(), SetTickSize(15))...)
	if err != nil {
		t.Errorf("tick size 15 should be accepted: %s", err)
	}
}

func TestSetDomain(t *testing.T) {
	set, err := NewAccountSet(append(baseOptions(), SetDomain("myrkle.app"))...)
	if err != nil {
		t.Fatal(err)
	}
	if set.Domain == nil {
		t.Fatal("wanted domain")
	}
	// stored raw; the library hex encodes VariableLength when
	// marshalling, so raw bytes here means single-encoded wire
	if string(*set.Domain) != "myrkle.app" {
		t.Errorf("unexpected domain %q", *set.Domain)
	}
	encoded, err := json.Marshal(set.Domain)
	if err != nil {
		t.Fatal(err)
	}
	if string(encoded) != `"6D79726B6C652E617070"` {
		t.Errorf("unexpected domain wire form %s", encoded)
	}
}

func TestDescribeFlags(t *testing.T) {
	// tfPartialPayment | tfLimitQuality
	described := DescribeFlags(PaymentFlags, 0x00060000)
	if len(described) != 2 {
		t.Fatalf("wanted 2 flags, got %d", len(described))
	}
	if described[0].Name != "tfPartialPayment" || described[1].Name != "tfLimitQuality" {
		t.Errorf("unexpected names %s, %s", described[0].Name, described[1].Name)
	}

	if described := DescribeFlags(OfferFlags, 0); described != nil {
		t.Errorf("no flags set, got %v", described)
	}

	// lsfDefaultRipple | lsfRequireDestTag
	described = DescribeFlags(AccountRootFlags, 0x00820000)
	if len(described) != 2 {
		t.Fatalf("wanted 2 account flags, got %d", len(described))
	}
}

func mustAccount(t *testing.T, address string) data.Account {
	t.Helper()
	account, err := data.NewAccountFromAddress(address)
	if err != nil {
		t.Fatal(err)
	}
	return *account
}
