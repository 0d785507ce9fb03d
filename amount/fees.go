package amount

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Fee fields use three distinct fixed-point encodings.  Each is an
// affine transform with its own scale and zero point, so each gets its
// own pair of functions rather than one parameterized converter.

const (
	// TransferRate: billionths of the sent amount, where 1_000_000_000
	// means "no fee".  One percent is 10_000_000 units.
	transferRateZero  = 1000000000
	transferRateScale = 10000000
	transferRateMax   = 2000000000

	// AMM TradingFee: thousandths of a percent, zero point 0.  The
	// protocol caps the fee at 1%.
	tradingFeeScale = 1000
	tradingFeeMax   = 1000

	// NFTokenMint TransferFee: thousandths of a percent, zero point 0,
	// capped at 50%.
	nftFeeScale = 1000
	nftFeeMax   = 50000
)

var ErrFeeOutOfRange = errors.New("fee out of range")

// TransferRateToWire encodes an issuer transfer fee, given in percent,
// as a ledger TransferRate field.
func TransferRateToWire(percent decimal.Decimal) (uint32, error) {
	units := percent.Mul(decimal.NewFromInt(transferRateScale))
	if !units.IsInteger() {
		return 0, errors.Wrapf(ErrFeeOutOfRange, "transfer fee %s%% finer than billionths", percent)
	}
	wire := transferRateZero + units.IntPart()
	if wire < transferRateZero || wire > transferRateMax {
		return 0, errors.Wrapf(ErrFeeOutOfRange, "transfer fee %s%% outside 0-100", percent)
	}
	return uint32(wire), nil
}

// TransferRateFromWire decodes a ledger TransferRate field to percent.
// The ledger reports 0 on accounts that never set a rate; that decodes
// to zero percent.
func TransferRateFromWire(wire uint32) decimal.Decimal {
	if wire == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(wire) - transferRateZero).
		Div(decimal.NewFromInt(transferRateScale))
}

// TradingFeeToWire encodes an AMM trading fee, given in percent, as a
// ledger TradingFee field.
func TradingFeeToWire(percent decimal.Decimal) (uint16, error) {
	units := percent.Mul(decimal.NewFromInt(tradingFeeScale))
	if !units.IsInteger() {
		return 0, errors.Wrapf(ErrFeeOutOfRange, "trading fee %s%% finer than 0.001%%", percent)
	}
	wire := units.IntPart()
	if wire < 0 || wire > tradingFeeMax {
		return 0, errors.Wrapf(ErrFeeOutOfRange, "trading fee %s%% outside 0-1", percent)
	}
	return uint16(wire), nil
}

// TradingFeeFromWire decodes a ledger TradingFee field to percent.
func TradingFeeFromWire(wire uint16) decimal.Decimal {
	return decimal.NewFromInt(int64(wire)).Div(decimal.NewFromInt(tradingFeeScale))
}

// NFTFeeToWire encodes an NFToken transfer fee, given in percent, as a
// NFTokenMint TransferFee field.
func NFTFeeToWire(percent decimal.Decimal) (uint16, error) {
	units := percent.Mul(decimal.NewFromInt(nftFeeScale))
	if !units.IsInteger() {
		return 0, errors.Wrapf(ErrFeeOutOfRange, "NFT transfer fee %s%% finer than 0.001%%", percent)
	}
	wire := units.IntPart()
	if wire < 0 || wire > nftFeeMax {
		return 0, errors.Wrapf(ErrFeeOutOfRange, "NFT transfer fee %s%% outside 0-50", percent)
	}
	return uint16(wire), nil
}

// NFTFeeFromWire decodes a NFToken TransferFee field to percent.
func NFTFeeFromWire(wire uint16) decimal.Decimal {
	return decimal.NewFromInt(int64(wire)).Div(decimal.NewFromInt(nftFeeScale))
}
