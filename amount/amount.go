// Package amount normalizes XRP Ledger monetary values.
//
// The ledger reports amounts in two wire shapes: native XRP as a string
// holding an integer count of drops, and issued currencies as an object
// with currency, issuer and a decimal value.  Callers ranking or
// displaying amounts want a single representation, so this package
// converts both shapes to a tagged Amount holding an exact decimal
// value.  It also owns the currency-symbol hex codec and the fixed-point
// fee encodings used by the transaction composers.
package amount

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	// DropsPerXRP is the number of indivisible drops in one XRP.
	DropsPerXRP = 1000000

	// dropScale is the decimal scale of one drop.
	dropScale = 6

	// currencyWidth is the width of a ledger currency code in bytes.
	// Non-standard codes appear on the wire as 2*currencyWidth hex
	// characters.
	currencyWidth = 20
)

var (
	ErrInvalidSymbol          = errors.New("invalid currency symbol")
	ErrPrecisionLoss          = errors.New("value carries sub-drop precision")
	ErrUnsupportedAmountShape = errors.New("unsupported amount shape")
)

// Amount is either a native XRP amount or an issued-currency amount.
// Value is always the human decimal quantity: whole XRP for native
// amounts, the reported decimal value for issued currencies.
type Amount struct {
	Currency string // decoded symbol; "XRP" when native
	Issuer   string // empty when native
	Value    decimal.Decimal
	IsNative bool
}

func (a Amount) String() string {
	if a.IsNative {
		return a.Value.String() + "/XRP"
	}
	return a.Value.String() + "/" + a.Currency + "/" + a.Issuer
}

// Native builds a native Amount from a drop count.
func Native(drops int64) Amount {
	return Amount{Currency: "XRP", Value: DropsToDecimal(drops), IsNative: true}
}

// Issued builds an issued-currency Amount.
func Issued(currency, issuer string, value decimal.Decimal) Amount {
	return Amount{Currency: currency, Issuer: issuer, Value: value}
}

// issuedWire is the object shape of an issued-currency amount.
type issuedWire struct {
	Currency string `json:"currency"`
	Issuer   string `json:"issuer"`
	Value    string `json:"value"`
}

// DecodeWire converts either wire shape of an amount into an Amount.
// A JSON string is treated as a drop count; a JSON object as an issued
// currency.  Anything else is ErrUnsupportedAmountShape.
func DecodeWire(raw json.RawMessage) (Amount, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return Amount{}, errors.Wrap(ErrUnsupportedAmountShape, "empty amount")
	}

	switch trimmed[0] {
	case '"':
		var drops string
		if err := json.Unmarshal(raw, &drops); err != nil {
			return Amount{}, errors.Wrap(ErrUnsupportedAmountShape, err.Error())
		}
		d, err := decimal.NewFromString(drops)
		if err != nil || !d.IsInteger() || d.IsNegative() {
			return Amount{}, errors.Wrapf(ErrUnsupportedAmountShape, "bad drop count %q", drops)
		}
		return Amount{Currency: "XRP", Value: d.Shift(-dropScale), IsNative: true}, nil

	case '{':
		var w issuedWire
		if err := json.Unmarshal(raw, &w); err != nil {
			return Amount{}, errors.Wrap(ErrUnsupportedAmountShape, err.Error())
		}
		symbol, err := DecodeSymbol(w.Currency)
		if err != nil {
			return Amount{}, err
		}
		value, err := decimal.NewFromString(w.Value)
		if err != nil {
			return Amount{}, errors.Wrapf(ErrUnsupportedAmountShape, "bad value %q", w.Value)
		}
		return Amount{Currency: symbol, Issuer: w.Issuer, Value: value}, nil
	}

	return Amount{}, errors.Wrapf(ErrUnsupportedAmountShape, "neither drops nor issued object: %s", trimmed)
}

// DropsToDecimal converts a drop count to whole XRP.  Exact; no
// floating point is involved.
func DropsToDecimal(drops int64) decimal.Decimal {
	return decimal.New(drops, -dropScale)
}

// DecimalToDrops converts whole XRP to a drop count.  Values carrying
// precision finer than one drop are rejected with ErrPrecisionLoss
// rather than silently truncated.
func DecimalToDrops(xrp decimal.Decimal) (int64, error) {
	shifted := xrp.Shift(dropScale)
	if !shifted.IsInteger() {
		return 0, errors.Wrapf(ErrPrecisionLoss, "%s XRP is not a whole number of drops", xrp)
	}
	return shifted.IntPart(), nil
}

// EncodeSymbol converts a 1-3 character currency symbol to the ledger's
// fixed-width hex form (40 hex characters, symbol bytes left-aligned,
// zero padded).  Input already in that form passes through unchanged,
// so the function is idempotent.
func EncodeSymbol(symbol string) (string, error) {
	if isWireHex(symbol) {
		return strings.ToUpper(symbol), nil
	}
	if len(symbol) < 1 || len(symbol) > 3 {
		return "", errors.Wrapf(ErrInvalidSymbol, "symbol %q must be 1-3 characters", symbol)
	}
	if !printable(symbol) {
		return "", errors.Wrapf(ErrInvalidSymbol, "symbol %q contains unprintable characters", symbol)
	}
	padded := make([]byte, currencyWidth)
	copy(padded, symbol)
	return strings.ToUpper(hex.EncodeToString(padded)), nil
}

// DecodeSymbol is the inverse of EncodeSymbol: it converts the
// fixed-width hex form back to a symbol, trimming the zero padding.
// Plain symbols pass through unchanged.
func DecodeSymbol(code string) (string, error) {
	if !isWireHex(code) {
		if code == "" {
			return "", errors.Wrap(ErrInvalidSymbol, "empty currency code")
		}
		if !printable(code) {
			return "", errors.Wrapf(ErrInvalidSymbol, "currency code %q contains unprintable characters", code)
		}
		return code, nil
	}
	raw, err := hex.DecodeString(code)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidSymbol, "bad hex currency code %q", code)
	}
	symbol := strings.TrimRight(string(raw), "\x00")
	if symbol == "" || !printable(symbol) {
		return "", errors.Wrapf(ErrInvalidSymbol, "currency code %q does not decode to a printable symbol", code)
	}
	return symbol, nil
}

// SymbolToWire converts a currency symbol to the form transactions and
// book queries carry.  Standard 1-3 character codes travel plain: the
// ledger treats their fixed-width hex expansion as a distinct
// nonstandard currency, so hexifying "USD" would target a different
// asset than a gateway's actual USD.  Codes already in the fixed-width
// hex form pass through.
func SymbolToWire(symbol string) (string, error) {
	if isWireHex(symbol) {
		return strings.ToUpper(symbol), nil
	}
	if len(symbol) < 1 || len(symbol) > 3 {
		return "", errors.Wrapf(ErrInvalidSymbol, "symbol %q must be 1-3 characters", symbol)
	}
	if !printable(symbol) {
		return "", errors.Wrapf(ErrInvalidSymbol, "symbol %q contains unprintable characters", symbol)
	}
	return symbol, nil
}

// EncodeText hex encodes free-form text fields (domains, NFT URIs).
// Unlike EncodeSymbol the result is not padded to a fixed width.
func EncodeText(text string) (string, error) {
	if !printable(text) {
		return "", errors.Wrapf(ErrInvalidSymbol, "text %q contains unprintable characters", text)
	}
	return strings.ToUpper(hex.EncodeToString([]byte(text))), nil
}

// DecodeText is the inverse of EncodeText.
func DecodeText(code string) (string, error) {
	raw, err := hex.DecodeString(code)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidSymbol, "bad hex text %q", code)
	}
	return string(raw), nil
}

// isWireHex reports whether s looks like a fixed-width hex currency
// code rather than a plain symbol.
func isWireHex(s string) bool {
	if len(s) != 2*currencyWidth {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func printable(s string) bool {
	for _, r := range s {
		if r < 0x21 || r > 0x7e {
			return false
		}
	}
	return len(s) > 0
}
