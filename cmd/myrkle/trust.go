// Operation trust
//
// Compose an unsigned TrustSet, extending or adjusting a trust line.
package main

import (
	"github.com/pkg/errors"
	"src.d10.dev/command"

	"github.com/ObiajuluM/myrkle/internal/cmd"
	"github.com/ObiajuluM/myrkle/tx"
)

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     opTrust,
		Name:        "trust",
		Syntax:      "trust [-noripple] [-json] <limit-amount>",
		Description: `Operation "trust" composes an unsigned TrustSet.  The limit amount is <value>/<currency>/<issuer>.`,
	})
}

func opTrust() error {
	norippleFlag := command.OperationFlagSet.Bool("noripple", true, "set the no-ripple flag on the line")
	jsonFlag := command.OperationFlagSet.Bool("json", false, "emit JSON instead of the gob pipe encoding")

	command.CheckUsage(command.ParseOperationFlagSet())

	argument := command.OperationFlagSet.Args()
	if len(argument) != 1 {
		command.CheckUsage(errors.New("operation requires <limit-amount> argument"))
	}

	limit, err := cmd.AmountFromArg(argument[0])
	if err != nil {
		command.Check(errors.Wrapf(err, "bad limit amount (%q)", argument[0]))
	}
	if limit.IsNative() {
		command.Check(errors.New("trust lines hold issued currencies, not XRP"))
	}

	if asAccount == nil {
		command.Check(errors.New("operation requires -as <account> flag"))
	}

	client, err := ledgerClient()
	command.Check(err)

	bookkeeping, err := sequenceOptions(client, *asAccount)
	command.Check(err)

	options := append([]tx.Option{
		tx.SetAddress(asAccount),
		tx.SetLimitAmount(*limit),
		tx.SetNoRipple(*norippleFlag),
	}, bookkeeping...)
	if asTag != nil {
		options = append(options, tx.SetSourceTag(asTag))
	}

	trustSet, err := tx.NewTrustSet(options...)
	command.Check(err)

	err = emitTx(*jsonFlag, trustSet)
	command.Check(err)

	command.V(1).Infof("prepared unsigned %s: %s trusts %s", trustSet.GetType(), cmd.FormatAccount(trustSet.Account), cmd.FormatDataAmount(trustSet.LimitAmount))
	return nil
}
