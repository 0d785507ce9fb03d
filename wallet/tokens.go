package wallet

import (
	"strings"

	"github.com/ObiajuluM/myrkle/amount"
)

// TrustLine is one issued-currency holding.
type TrustLine struct {
	Token   string // decoded symbol
	Issuer  string
	Balance string // decimal string as reported
	Limit   string // the most of the token this account will hold
	Frozen  bool
	// NoRipple true means rippling is disabled on the line, the safe
	// default for ordinary holders.
	NoRipple bool
}

// Tokens lists the account's issued-currency holdings, excluding
// AMM LP tokens, whose generated currency codes do not decode to a
// symbol.
func Tokens(client Ledger, account string) ([]TrustLine, error) {
	result, err := client.AccountLines(account)
	if err != nil {
		return nil, err
	}
	var lines []TrustLine
	for _, line := range result.Lines {
		if isLPTokenCode(line.Currency) {
			continue
		}
		symbol, err := amount.DecodeSymbol(line.Currency)
		if err != nil {
			continue
		}
		lines = append(lines, TrustLine{
			Token:    symbol,
			Issuer:   line.Account,
			Balance:  line.Balance,
			Limit:    line.Limit,
			Frozen:   line.Freeze,
			NoRipple: line.NoRipple,
		})
	}
	return lines, nil
}

// LP token currency codes are 160-bit hashes with a 0x03 type prefix;
// they are not encoded symbols.
func isLPTokenCode(currency string) bool {
	return len(currency) == 40 && strings.HasPrefix(currency, "03")
}

// IssuedToken is a token some account has created, seen from either
// the issuer or the manager side.
type IssuedToken struct {
	Token   string
	Issuer  string
	Manager string // set on the manager view only
	Amount  string
	Domain  string
}

// IssuedTokens lists tokens the account has issued (its obligations),
// with the issuer's advertised domain.
func IssuedTokens(client Ledger, account string) ([]IssuedToken, error) {
	result, err := client.GatewayBalances(account)
	if err != nil {
		return nil, err
	}
	if len(result.Obligations) == 0 {
		return nil, nil
	}

	domain := lookupDomain(client, account)

	var tokens []IssuedToken
	for code, value := range result.Obligations {
		symbol, err := amount.DecodeSymbol(code)
		if err != nil {
			symbol = code
		}
		tokens = append(tokens, IssuedToken{
			Token:  symbol,
			Issuer: account,
			Amount: value,
			Domain: domain,
		})
	}
	return tokens, nil
}

// ManagedTokens lists tokens the account holds directly from their
// issuers, the manager (hot wallet) side of a gateway.
func ManagedTokens(client Ledger, account string) ([]IssuedToken, error) {
	result, err := client.GatewayBalances(account)
	if err != nil {
		return nil, err
	}

	var tokens []IssuedToken
	for issuer, holdings := range result.Assets {
		domain := lookupDomain(client, issuer)
		for _, holding := range holdings {
			symbol, err := amount.DecodeSymbol(holding.Currency)
			if err != nil {
				symbol = holding.Currency
			}
			tokens = append(tokens, IssuedToken{
				Token:   symbol,
				Issuer:  issuer,
				Manager: account,
				Amount:  holding.Value,
				Domain:  domain,
			})
		}
	}
	return tokens, nil
}

// lookupDomain fetches and decodes an account's domain; best effort,
// empty on any failure.
func lookupDomain(client Ledger, account string) string {
	info, err := client.AccountInfo(account)
	if err != nil || info.AccountData.Domain == "" {
		return ""
	}
	domain, err := amount.DecodeText(info.AccountData.Domain)
	if err != nil {
		return ""
	}
	return domain
}
