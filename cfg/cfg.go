// Package cfg loads myrkle configuration from ini files and resolves
// account nicknames.
package cfg

// myrkle.cfg file example:

/*
# rippled JSON-RPC URL.  For testnet, use "https://s.altnet.rippletest.net:51234"
rippled=https://s1.ripple.com:51234

# NFT indexer base URL.
indexer=https://api.xrpldata.com/

# Stamped onto every composed transaction.  Omit to disable.
source_tag=10011001
memo_type=Done-with-Myrkle
memo_data=https://myrkle.app

# Default account when constructing transactions.
account=rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B

# Other accounts...
[rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B]
	nickname=bitstamp

[rGFuMiw48HdbnrUbkRYuitXTmfrDBNTCnX]
	nickname=bitstamp (hot)
*/

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-ini/ini"
	"github.com/rubblelabs/ripple/data"
)

type Config struct {
	*ini.File
	// map nicknames to their configuration
	accounts map[string]*ini.Section
}

// FromINI wraps an already-loaded ini file, indexing its account
// nicknames.  Used by commands whose framework loads configuration
// itself.  A nil file behaves as empty configuration.
func FromINI(file *ini.File) Config {
	if file == nil {
		file = ini.Empty()
	}
	config := Config{File: file}
	// Create a mapping of nickname -> account.
	config.accounts = make(map[string]*ini.Section)
	for _, section := range config.Sections() {
		if section.HasKey("nickname") {
			nickname := section.Key("nickname").String()
			address := section.Name()
			_, err := data.NewAccountFromAddress(address)
			if err != nil {
				log.Printf("Bad address %s in [%s]", address, section.Name())
			} else {
				config.accounts[nickname] = section
				config.accounts[nickname].NewKey("address", address)
			}
		}
		if section.HasKey("address") {
			nickname := section.Name()
			_, err := data.NewAccountFromAddress(section.Key("address").String())
			if err != nil {
				log.Printf("Bad address [%s] with nickname \"%s\"\n", section.Key("address"), section.Name())
			} else {
				config.accounts[nickname] = section
			}
		}
	}

	return config
}

func (config Config) GetRippled() string {
	return config.Section("").Key("rippled").String()
}

func (config Config) GetIndexer() string {
	return config.Section("").Key("indexer").String()
}

func (config Config) GetAccount() string {
	return config.Section("").Key("account").String()
}

// GetSourceTag returns the source tag to stamp onto composed
// transactions, nil when not configured.
func (config Config) GetSourceTag() *uint32 {
	key := config.Section("").Key("source_tag")
	if key.String() == "" {
		return nil
	}
	tag, err := key.Uint()
	if err != nil {
		log.Printf("config bad source_tag %q: %s", key.String(), err)
		return nil
	}
	tmp := uint32(tag)
	return &tmp
}

func (config Config) GetMemoType() string {
	return config.Section("").Key("memo_type").String()
}

func (config Config) GetMemoData() string {
	return config.Section("").Key("memo_data").String()
}

func (config Config) GetAccountByNickname(nickname string) (account *data.Account, tag *uint32, ok bool) {
	var err error

	section, ok := config.accounts[nickname]
	if ok {
		account, err = data.NewAccountFromAddress(section.Key("address").String())
		if err != nil {
			log.Printf("Bad address: %s\n", section.Key("address"))
			return account, tag, false
		}

		if section.HasKey("tag") {
			tagUint, err := section.Key("tag").Uint()
			if err != nil {
				log.Printf("config [%s] bad tag \"%s\": %s", section.Name(), section.Key("tag"), err)
				return account, tag, false
			} else {
				tmp := uint32(tagUint)
				tag = &tmp
			}
		}
	}

	return account, tag, ok
}

func (config Config) GetAccountNickname(account data.Account) (string, bool) {
	nick := config.Section(account.String()).Key("nickname").String()
	return nick, nick != ""
}

// Helper to parse a command line argument into a fully-qualifed account.
func (config Config) AccountFromArg(arg string) (*data.Account, *uint32, error) {
	acct, err := data.NewAccountFromAddress(arg)
	var tag *uint32
	var ok bool
	if err != nil {
		// maybe the arg is a nickname and not an address
		acct, tag, ok = config.GetAccountByNickname(arg)
		if acct == nil || !ok {
			return acct, tag, fmt.Errorf("Not an address: %s", arg)
		}
	}
	return acct, tag, nil
}

func (config Config) AmountFromArg(arg string) (*data.Amount, error) {
	amt, err := data.NewAmount(arg)
	if err != nil {
		parts := strings.Split(arg, "/") // i.e. 1/USD/rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B or 1/USD/bitstamp
		if len(parts) == 3 && parts[2] != "" {
			acct, _, ok := config.GetAccountByNickname(parts[2])
			if ok {
				amt, err = data.NewAmount(parts[0] + "/" + parts[1] + "/" + acct.String())
			}
		}
	}
	return amt, err
}
