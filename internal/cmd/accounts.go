package cmd

import (
	"fmt"
	"log"

	"github.com/rubblelabs/ripple/data"
)

// AccountTag is a "fully qualified" account identifier, meaning an
// address and destination (or source) tag.
type AccountTag struct {
	Account data.Account
	Tag     uint32 // not *uint32, so AccountTag can be a map key
}

func NewAccountTag(acct data.Account, tag *uint32) AccountTag {
	this := AccountTag{Account: acct}
	if tag != nil {
		this.Tag = *tag
	}
	return this
}

func (this *AccountTag) String() string {
	if this == nil {
		log.Panic("nil AccountTag passed to AccountTag.String()")
	}
	if this.Tag == 0 { // treat 0 as no tag
		return this.Account.String()
	}
	return fmt.Sprintf("%s.%d", this.Account, this.Tag)
}

// TagPointer returns the tag in the optional form transactions want.
func (this AccountTag) TagPointer() *uint32 {
	if this.Tag == 0 {
		return nil
	}
	tmp := this.Tag
	return &tmp
}

// FormatAccount returns the account's configured nickname if known,
// otherwise its address.
func FormatAccount(account data.Account) string {
	c, err := Config()
	if err != nil {
		return account.String()
	}
	return c.FormatAccountName(account)
}

// FormatDataAmount renders an amount with the issuer's nickname when
// one is configured.
func FormatDataAmount(amount data.Amount) string {
	c, err := Config()
	if err != nil {
		return amount.String()
	}
	return c.FormatAmount(amount)
}

// ParseAccountArg resolves command line arguments that may each be a
// local nickname or a normal ripple address.
func ParseAccountArg(arg []string) ([]AccountTag, error) {
	c, err := Config()
	if err != nil {
		return nil, err
	}

	var account []AccountTag
	for _, a := range arg {
		acct, tag, err := c.AccountFromArg(a)
		if err != nil {
			return account, fmt.Errorf("bad address (%q): %w", a, err)
		}
		account = append(account, NewAccountTag(*acct, tag))
	}
	return account, nil
}

// AmountFromArg parses an amount argument, resolving a nicknamed
// issuer, i.e. "5/USD/bitstamp".
func AmountFromArg(arg string) (*data.Amount, error) {
	c, err := Config()
	if err != nil {
		return nil, err
	}
	return c.AmountFromArg(arg)
}
