// Operation mint
//
// Compose an unsigned NFTokenMint.  The transaction type postdates
// the rubblelabs vintage in use, so output is always the JSON wire
// shape, ready for rippled's sign method.
package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"src.d10.dev/command"

	"github.com/ObiajuluM/myrkle/internal/cmd"
	"github.com/ObiajuluM/myrkle/tx"
)

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     opMint,
		Name:        "mint",
		Syntax:      "mint [-taxon=<n>] [-uri=<uri>] [-transferable] [-onlyxrp] [-burnable] [-fee=<percent>]",
		Description: `Operation "mint" composes an unsigned NFTokenMint, emitted as JSON.`,
	})
}

func opMint() error {
	taxonFlag := command.OperationFlagSet.Uint("taxon", 0, "collection identifier, issuer-assigned")
	uriFlag := command.OperationFlagSet.String("uri", "", "URI of the token's content or metadata")
	transferableFlag := command.OperationFlagSet.Bool("transferable", false, "token may move between non-issuer accounts")
	onlyXRPFlag := command.OperationFlagSet.Bool("onlyxrp", false, "token trades against XRP only")
	burnableFlag := command.OperationFlagSet.Bool("burnable", false, "issuer may burn the token while another account holds it")
	feeFlag := command.OperationFlagSet.String("fee", "", "transfer fee percent (0-50), requires -transferable")

	command.CheckUsage(command.ParseOperationFlagSet())

	if asAccount == nil {
		command.Check(errors.New("operation requires -as <account> flag"))
	}

	mintCfg := tx.MintConfig{
		Taxon:          uint32(*taxonFlag),
		URI:            *uriFlag,
		Transferable:   *transferableFlag,
		OnlyXRP:        *onlyXRPFlag,
		IssuerBurnable: *burnableFlag,
	}
	if *feeFlag != "" {
		percent, err := decimal.NewFromString(*feeFlag)
		if err != nil {
			command.CheckUsage(errors.Wrapf(err, "bad fee %q", *feeFlag))
		}
		mintCfg.TransferFee = percent
	}

	stamp, err := cmd.WireStamp("")
	command.Check(err)

	mint, err := tx.NewNFTokenMint(*asAccount, mintCfg, stamp)
	command.Check(err)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "\t")
	err = enc.Encode(mint)
	command.Check(err)

	command.V(1).Infof("prepared unsigned NFTokenMint for %s", cmd.FormatAccount(*asAccount))
	return nil
}
