package tx

// Flag catalogs for display and name-based lookup.  Values follow the
// ledger's AccountRoot, Offer, NFToken and Payment flag definitions.

// FlagInfo describes one ledger or transaction flag.
type FlagInfo struct {
	Name  string
	Value uint32
	// Asf is the AccountSet field value that toggles the flag, when one
	// exists.
	Asf         uint32
	Description string
}

// AccountRootFlags are the lsf flags readable on an AccountRoot ledger
// entry.
var AccountRootFlags = []FlagInfo{
	{"lsfDefaultRipple", 0x00800000, AsfDefaultRipple, "rippling enabled by default on this account's trust lines; required for issuers"},
	{"lsfDepositAuth", 0x01000000, AsfDepositAuth, "account only receives funds it has preauthorized or pulled itself"},
	{"lsfDisableMaster", 0x00100000, AsfDisableMaster, "master key pair may not sign for this account"},
	{"lsfDisallowIncomingCheck", 0x08000000, AsfDisallowIncomingCheck, "other accounts may not create checks directed here"},
	{"lsfDisallowIncomingNFTokenOffer", 0x04000000, AsfDisallowIncomingNFTOffer, "other accounts may not create NFT offers directed here"},
	{"lsfDisallowIncomingPayChan", 0x10000000, AsfDisallowIncomingPayChan, "other accounts may not create payment channels directed here"},
	{"lsfDisallowIncomingTrustline", 0x20000000, AsfDisallowIncomingTrustline, "other accounts may not create trust lines directed here"},
	{"lsfDisallowXRP", 0x00080000, AsfDisallowXRP, "clients should not send XRP here; not enforced by the ledger"},
	{"lsfGlobalFreeze", 0x00400000, AsfGlobalFreeze, "all assets issued by this account are frozen"},
	{"lsfNoFreeze", 0x00200000, AsfNoFreeze, "account has permanently given up the ability to freeze trust lines"},
	{"lsfPasswordSpent", 0x00010000, 0, "account has used its free SetRegularKey transaction"},
	{"lsfRequireAuth", 0x00040000, AsfRequireAuth, "holders of this account's tokens require individual approval"},
	{"lsfRequireDestTag", 0x00020000, AsfRequireDest, "incoming payments must carry a destination tag"},
}

// AsfFlagByName resolves a human name ("require-auth", "asfRequireAuth",
// "lsfRequireAuth") to its AccountSet field value.
func AsfFlagByName(name string) (uint32, bool) {
	canon := canonicalFlagName(name)
	for _, f := range AccountRootFlags {
		if f.Asf != 0 && canonicalFlagName(f.Name[3:]) == canon {
			return f.Asf, true
		}
	}
	// asf-only toggles without a readable lsf counterpart
	switch canon {
	case "accounttxnid":
		return AsfAccountTxnID, true
	case "authorizednftokenminter", "nftokenminter":
		return AsfAuthorizedNFTokenMinter, true
	case "allowtrustlineclawback", "clawback":
		return AsfAllowTrustLineClawback, true
	}
	return 0, false
}

func canonicalFlagName(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out = append(out, c+'a'-'A')
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			out = append(out, c)
		}
	}
	s := string(out)
	for _, prefix := range []string{"lsf", "asf"} {
		if len(s) > len(prefix) && s[:len(prefix)] == prefix {
			s = s[len(prefix):]
		}
	}
	return s
}

// NFTokenFlags are the mint-time flags readable on an NFToken.
var NFTokenFlags = []FlagInfo{
	{"tfBurnable", TfBurnable, 0, "issuer may burn the token regardless of holder"},
	{"tfOnlyXRP", TfOnlyXRP, 0, "token may be bought or sold for XRP only"},
	{"tfTransferable", TfTransferable, 0, "token may be transferred between non-issuer accounts"},
}

// OfferFlags are the OfferCreate transaction flags.
var OfferFlags = []FlagInfo{
	{"tfPassive", 0x00010000, 0, "offer rests on the book instead of consuming exact matches"},
	{"tfImmediateOrCancel", 0x00020000, 0, "trade what crosses now, never rest on the book"},
	{"tfFillOrKill", 0x00040000, 0, "cancel unless the full amount executes"},
	{"tfSell", 0x00080000, 0, "spend the entire taker-gets amount even past the quoted price"},
}

// PaymentFlags are the Payment transaction flags.
var PaymentFlags = []FlagInfo{
	{"tfNoDirectRipple", 0x00010000, 0, "use only explicitly supplied paths"},
	{"tfPartialPayment", 0x00020000, 0, "deliver less than the full amount rather than fail"},
	{"tfLimitQuality", 0x00040000, 0, "reject conversions worse than the implied quality"},
}

// DescribeFlags returns the catalog entries whose bits are set.
func DescribeFlags(catalog []FlagInfo, flags uint32) []FlagInfo {
	var set []FlagInfo
	for _, f := range catalog {
		if flags&f.Value == f.Value {
			set = append(set, f)
		}
	}
	return set
}
