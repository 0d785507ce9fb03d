package wallet

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ObiajuluM/myrkle/rpc"
)

const (
	testAccount = "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"
	peerAccount = "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq"
)

// stubLedger serves canned query results.
type stubLedger struct {
	info     *rpc.AccountInfoResult
	lines    *rpc.AccountLinesResult
	nfts     *rpc.AccountNFTsResult
	txs      *rpc.AccountTxResult
	balances *rpc.GatewayBalancesResult
}

func (s stubLedger) AccountInfo(account string) (*rpc.AccountInfoResult, error) {
	return s.info, nil
}
func (s stubLedger) AccountLines(account string) (*rpc.AccountLinesResult, error) {
	return s.lines, nil
}
func (s stubLedger) AccountNFTs(account string) (*rpc.AccountNFTsResult, error) {
	return s.nfts, nil
}
func (s stubLedger) AccountTx(account string) (*rpc.AccountTxResult, error) {
	return s.txs, nil
}
func (s stubLedger) GatewayBalances(account string) (*rpc.GatewayBalancesResult, error) {
	return s.balances, nil
}

func TestXRPBalanceReserves(t *testing.T) {
	ledger := stubLedger{
		info: &rpc.AccountInfoResult{
			AccountData: rpc.AccountData{
				Account:    testAccount,
				Balance:    "25000000", // 25 XRP in drops
				OwnerCount: 3,
			},
		},
	}

	balance, err := XRPBalance(ledger, testAccount)
	require.NoError(t, err)

	// 25 - 10 base - 3*2 owner = 9 XRP spendable
	assert.True(t, balance.Spendable.Equal(decimal.NewFromInt(9)),
		"wanted 9 XRP spendable, got %s", balance.Spendable)
	assert.Equal(t, uint32(3), balance.ObjectCount)
}

func TestXRPBalanceBelowReserve(t *testing.T) {
	ledger := stubLedger{
		info: &rpc.AccountInfoResult{
			AccountData: rpc.AccountData{Balance: "8000000", OwnerCount: 0},
		},
	}
	balance, err := XRPBalance(ledger, testAccount)
	require.NoError(t, err)
	assert.True(t, balance.Spendable.IsNegative(), "below-reserve balance should be negative, got %s", balance.Spendable)
}

func TestXRPBalanceBadDrops(t *testing.T) {
	ledger := stubLedger{
		info: &rpc.AccountInfoResult{
			AccountData: rpc.AccountData{Balance: "not-a-number"},
		},
	}
	_, err := XRPBalance(ledger, testAccount)
	assert.Error(t, err)
}

func TestTokensSkipsLPTokens(t *testing.T) {
	ledger := stubLedger{
		lines: &rpc.AccountLinesResult{
			Lines: []rpc.AccountLine{
				{Account: peerAccount, Balance: "100", Currency: "USD", Limit: "1000", NoRipple: true},
				// AMM LP token code, 0x03 type prefix
				{Account: peerAccount, Balance: "5", Currency: "03AB40A66B5F79D3E1FE6AF1829D3E7197FE1C9A", Limit: "0"},
			},
		},
	}

	tokens, err := Tokens(ledger, testAccount)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "USD", tokens[0].Token)
	assert.Equal(t, peerAccount, tokens[0].Issuer)
	assert.True(t, tokens[0].NoRipple)
}

func TestNFTsDecodesWireFields(t *testing.T) {
	ledger := stubLedger{
		nfts: &rpc.AccountNFTsResult{
			AccountNFTs: []rpc.AccountNFT{
				{
					Issuer:       peerAccount,
					NFTokenID:    "000813886377BBDA",
					NFTokenTaxon: 13,
					URI:          "697066733A2F2F516D54657374", // ipfs://QmTest
					TransferFee:  5000,
					Serial:       7,
				},
			},
		},
	}

	nfts, err := NFTs(ledger, testAccount)
	require.NoError(t, err)
	require.Len(t, nfts, 1)
	assert.Equal(t, "ipfs://QmTest", nfts[0].URI)
	assert.True(t, nfts[0].TransferFee.Equal(decimal.NewFromInt(5)),
		"wanted 5 percent, got %s", nfts[0].TransferFee)
}

func TestPaymentHistory(t *testing.T) {
	ledger := stubLedger{
		txs: &rpc.AccountTxResult{
			Transactions: []rpc.AccountTransaction{
				{
					Tx: rpc.TxSummary{
						TransactionType: "Payment",
						Account:         testAccount,
						Destination:     peerAccount,
						Amount:          json.RawMessage(`"2000000"`),
						Fee:             "12",
						Date:            740000000,
						Hash:            "AAA",
					},
					Meta: rpc.TxMeta{
						TransactionResult: "tesSUCCESS",
						// partial payment delivered less than Amount
						DeliveredAmount: json.RawMessage(`"1500000"`),
					},
				},
				{
					Tx: rpc.TxSummary{
						TransactionType: "Payment",
						Account:         peerAccount,
						Destination:     testAccount,
						Amount:          json.RawMessage(`{"currency":"USD","issuer":"` + peerAccount + `","value":"9.5"}`),
						Fee:             "12",
						Date:            740000100,
						Hash:            "BBB",
					},
					Meta: rpc.TxMeta{TransactionResult: "tesSUCCESS"},
				},
				{
					Tx: rpc.TxSummary{TransactionType: "OfferCreate", Account: testAccount},
				},
			},
		},
	}

	history, err := PaymentHistory(ledger, testAccount, AllPayments)
	require.NoError(t, err)

	require.Len(t, history.Sent, 1)
	require.Len(t, history.Received, 1)

	sent := history.Sent[0]
	// delivered_amount is authoritative over Amount
	assert.True(t, sent.Amount.Value.Equal(decimal.RequireFromString("1.5")),
		"wanted delivered 1.5 XRP, got %s", sent.Amount.Value)
	assert.Equal(t, "tesSUCCESS", sent.Result)
	assert.Equal(t, "AAA", sent.TxID)

	received := history.Received[0]
	assert.False(t, received.Amount.IsNative)
	assert.Equal(t, "USD", received.Amount.Currency)
}

func TestPaymentHistoryKindFilter(t *testing.T) {
	ledger := stubLedger{
		txs: &rpc.AccountTxResult{
			Transactions: []rpc.AccountTransaction{
				{
					Tx: rpc.TxSummary{
						TransactionType: "Payment",
						Account:         testAccount,
						Destination:     peerAccount,
						Amount:          json.RawMessage(`"2000000"`),
					},
				},
				{
					Tx: rpc.TxSummary{
						TransactionType: "Payment",
						Account:         testAccount,
						Destination:     peerAccount,
						Amount:          json.RawMessage(`{"currency":"USD","issuer":"` + peerAccount + `","value":"1"}`),
					},
				},
			},
		},
	}

	history, err := PaymentHistory(ledger, testAccount, XRPPayments)
	require.NoError(t, err)
	require.Len(t, history.Sent, 1)
	assert.True(t, history.Sent[0].Amount.IsNative)

	history, err = PaymentHistory(ledger, testAccount, TokenPayments)
	require.NoError(t, err)
	require.Len(t, history.Sent, 1)
	assert.False(t, history.Sent[0].Amount.IsNative)
}

func TestIssuedTokens(t *testing.T) {
	ledger := stubLedger{
		balances: &rpc.GatewayBalancesResult{
			Obligations: map[string]string{"USD": "245.19"},
		},
		info: &rpc.AccountInfoResult{
			AccountData: rpc.AccountData{
				Domain: "6D79726B6C652E617070", // myrkle.app
			},
		},
	}

	tokens, err := IssuedTokens(ledger, testAccount)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "USD", tokens[0].Token)
	assert.Equal(t, "245.19", tokens[0].Amount)
	assert.Equal(t, "myrkle.app", tokens[0].Domain)
}
