package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/rubblelabs/ripple/data"
	"golang.org/x/sync/errgroup"
	"src.d10.dev/command"

	"github.com/ObiajuluM/myrkle/amount"
	"github.com/ObiajuluM/myrkle/internal/cmd"
	"github.com/ObiajuluM/myrkle/internal/marshal"
	"github.com/ObiajuluM/myrkle/internal/pipeline"
	"github.com/ObiajuluM/myrkle/rpc"
	"github.com/ObiajuluM/myrkle/tx"
)

// flagNames renders the set flags from a catalog as a comma-separated
// list for table display.
func flagNames(catalog []tx.FlagInfo, flags uint32) string {
	var names []string
	for _, f := range tx.DescribeFlags(catalog, flags) {
		names = append(names, f.Name)
	}
	return strings.Join(names, ",")
}

// ledgerClient connects to the configured rippled.
func ledgerClient() (rpc.Client, error) {
	rippled, err := cmd.Rippled()
	if err != nil {
		return rpc.Client{}, err
	}
	client, err := rpc.NewClient(rippled, false)
	if err == nil {
		command.V(1).Infof("using rippled %s", rippled)
	}
	return client, err
}

// sequenceOptions fetches the originator's current sequence and the
// open-ledger fee, returning the bookkeeping options every composed
// transaction carries.  Network calls run in parallel.
func sequenceOptions(client rpc.Client, account data.Account) ([]tx.Option, error) {
	var g errgroup.Group
	var accountInfo *rpc.AccountInfoResult
	var feeInfo *rpc.FeeResult

	g.Go(func() error {
		var err error
		accountInfo, err = client.AccountInfo(account.String())
		if err != nil {
			return fmt.Errorf("failed to get account_info (%s): %w", account, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		feeInfo, err = client.Fee()
		if err != nil {
			return fmt.Errorf("failed to get fee: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fee := 12 // drops, fallback when fee query returns nonsense
	if f, err := strconv.Atoi(feeInfo.Drops.OpenLedgerFee); err == nil && f > 0 {
		fee = f
	}

	lastLedger := accountInfo.LedgerIndex
	if lastLedger == 0 {
		lastLedger = accountInfo.LedgerCurrentIndex
	}

	options := []tx.Option{
		tx.SetSequence(accountInfo.AccountData.Sequence),
		tx.SetLastLedgerSequence(lastLedger + LedgerSequenceInterval),
		tx.SetFee(fee),
	}

	stamp, err := cmd.StampOptions()
	if err != nil {
		return nil, err
	}
	return append(options, stamp...), nil
}

// emitTx writes the unsigned transaction to stdout for piping to a
// signer.  Default encoding is hex-wrapped gob; -json emits indented
// JSON instead.
func emitTx(jsonFlag bool, transaction data.Transaction) error {
	if glog.V(2) {
		if jb, err := json.MarshalIndent(transaction, "", "\t"); err == nil {
			glog.Infof("composed transaction: \n%s\n", string(jb))
		}
	}

	out := make(chan data.Transaction)
	var g errgroup.Group
	g.Go(func() error {
		if jsonFlag {
			return pipeline.EncodeOutput(os.Stdout, out)
		}
		return marshal.EncodeTransactions(os.Stdout, out)
	})
	out <- transaction
	close(out)
	return g.Wait()
}

// formatAmount renders a decoded amount for table output.
func formatAmount(a amount.Amount) string {
	if a.IsNative {
		return fmt.Sprintf("%s XRP", a.Value)
	}
	symbol, err := amount.DecodeSymbol(a.Currency)
	if err != nil {
		symbol = a.Currency
	}
	return fmt.Sprintf("%s %s/%s", a.Value, symbol, a.Issuer)
}

// assetFromArg parses a book side: "XRP" or "USD/<issuer-or-nickname>".
func assetFromArg(arg string) (rpc.Asset, error) {
	if arg == "XRP" || arg == "xrp" {
		return rpc.NativeAsset(), nil
	}
	parts := strings.SplitN(arg, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return rpc.Asset{}, fmt.Errorf("expected XRP or <currency>/<issuer>, got %q", arg)
	}
	symbol, issuer := parts[0], parts[1]
	parsed, err := cmd.ParseAccountArg([]string{issuer})
	if err != nil {
		return rpc.Asset{}, err
	}
	code, err := amount.SymbolToWire(symbol)
	if err != nil {
		return rpc.Asset{}, err
	}
	return rpc.Asset{Currency: code, Issuer: parsed[0].Account.String()}, nil
}
