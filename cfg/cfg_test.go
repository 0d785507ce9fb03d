package cfg

import (
	"testing"

	"github.com/go-ini/ini"
)

const testConfig = `
rippled=https://s.altnet.rippletest.net:51234
source_tag=10011001
memo_type=Done-with-Myrkle
account=rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B

[rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B]
nickname=cold

[rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq]
nickname=hot
tag=555
`

func load(t *testing.T) Config {
	t.Helper()
	file, err := ini.Load([]byte(testConfig))
	if err != nil {
		t.Fatal(err)
	}
	return FromINI(file)
}

func TestFromINIAbsentConfig(t *testing.T) {
	// commands run without a configuration directory; everything
	// falls back to defaults
	config := FromINI(nil)

	if got := config.GetRippled(); got != "" {
		t.Errorf("empty config has no rippled, got %q", got)
	}
	if got := config.GetAccount(); got != "" {
		t.Errorf("empty config has no account, got %q", got)
	}
	if tag := config.GetSourceTag(); tag != nil {
		t.Errorf("empty config has no source tag, got %d", *tag)
	}
	if _, _, ok := config.GetAccountByNickname("anyone"); ok {
		t.Error("empty config resolved a nickname")
	}
}

func TestNicknameResolution(t *testing.T) {
	config := load(t)

	account, tag, ok := config.GetAccountByNickname("cold")
	if !ok {
		t.Fatal("nickname cold not resolved")
	}
	if account.String() != "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B" {
		t.Errorf("wrong account for cold: %s", account)
	}
	if tag != nil {
		t.Errorf("cold has no tag, got %d", *tag)
	}

	_, tag, ok = config.GetAccountByNickname("hot")
	if !ok {
		t.Fatal("nickname hot not resolved")
	}
	if tag == nil || *tag != 555 {
		t.Errorf("expected tag 555 for hot, got %v", tag)
	}

	if _, _, ok := config.GetAccountByNickname("nobody"); ok {
		t.Error("unknown nickname resolved")
	}
}

func TestAccountFromArg(t *testing.T) {
	config := load(t)

	// literal address
	account, _, err := config.AccountFromArg("rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq")
	if err != nil {
		t.Fatal(err)
	}
	if account.String() != "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq" {
		t.Errorf("wrong account: %s", account)
	}

	// nickname
	account, tag, err := config.AccountFromArg("hot")
	if err != nil {
		t.Fatal(err)
	}
	if account.String() != "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq" {
		t.Errorf("wrong account for hot: %s", account)
	}
	if tag == nil || *tag != 555 {
		t.Errorf("expected tag 555, got %v", tag)
	}

	if _, _, err := config.AccountFromArg("never heard of them"); err == nil {
		t.Error("expected error for unresolvable arg")
	}
}

func TestAmountFromArgNickname(t *testing.T) {
	config := load(t)

	amt, err := config.AmountFromArg("10/USD/cold")
	if err != nil {
		t.Fatal(err)
	}
	if amt.Issuer.String() != "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B" {
		t.Errorf("nickname issuer not resolved: %s", amt.Issuer)
	}

	if _, err := config.AmountFromArg("10/USD/stranger"); err == nil {
		t.Error("expected error for unknown issuer nickname")
	}
}

func TestStampSettings(t *testing.T) {
	config := load(t)

	tag := config.GetSourceTag()
	if tag == nil || *tag != 10011001 {
		t.Errorf("expected source_tag 10011001, got %v", tag)
	}
	if config.GetMemoType() != "Done-with-Myrkle" {
		t.Errorf("wrong memo_type: %q", config.GetMemoType())
	}
	if config.GetMemoData() != "" {
		t.Errorf("memo_data unset, got %q", config.GetMemoData())
	}
	if config.GetRippled() != "https://s.altnet.rippletest.net:51234" {
		t.Errorf("wrong rippled: %q", config.GetRippled())
	}
	if config.GetAccount() != "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B" {
		t.Errorf("wrong account: %q", config.GetAccount())
	}
}
