// Operation set
//
// Compose an unsigned AccountSet: toggle account flags, set the
// domain, transfer fee, or tick size.
package main

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"src.d10.dev/command"

	"github.com/ObiajuluM/myrkle/internal/cmd"
	"github.com/ObiajuluM/myrkle/tx"
)

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     opSet,
		Name:        "set",
		Syntax:      "set [-issuer|-manager] [-flag=<name>] [-clear=<name>] [-domain=<domain>] [-rate=<percent>] [-ticksize=<n>] [-json]",
		Description: `Operation "set" composes an unsigned AccountSet.  Flag names follow the ledger's asf names, i.e. "require-auth" or "asfRequireAuth".  -issuer and -manager compose the conventional cold and hot account settings for a token gateway.`,
	})
}

func opSet() error {
	issuerFlag := command.OperationFlagSet.Bool("issuer", false, "apply the conventional cold (issuing) account settings")
	managerFlag := command.OperationFlagSet.Bool("manager", false, "apply the conventional hot (operational) account settings")
	setFlag := command.OperationFlagSet.String("flag", "", "account flag to set")
	clearFlag := command.OperationFlagSet.String("clear", "", "account flag to clear")
	domainFlag := command.OperationFlagSet.String("domain", "", "domain to advertise on the account")
	rateFlag := command.OperationFlagSet.String("rate", "", "transfer fee percent charged when the issuer's tokens change hands")
	tickFlag := command.OperationFlagSet.Uint("ticksize", 0, "significant digits for offers in the issuer's currencies (3-15)")
	jsonFlag := command.OperationFlagSet.Bool("json", false, "emit JSON instead of the gob pipe encoding")

	command.CheckUsage(command.ParseOperationFlagSet())

	if *issuerFlag && *managerFlag {
		command.CheckUsage(errors.New("an account is the cold side or the hot side, not both"))
	}
	if !*issuerFlag && !*managerFlag &&
		*setFlag == "" && *clearFlag == "" && *domainFlag == "" && *rateFlag == "" && *tickFlag == 0 {
		command.CheckUsage(errors.New("operation requires at least one of -issuer, -manager, -flag, -clear, -domain, -rate, -ticksize"))
	}
	if *setFlag != "" && *clearFlag != "" {
		// one AccountSet toggles one flag
		command.CheckUsage(errors.New("use separate transactions to set and clear flags"))
	}

	if asAccount == nil {
		command.Check(errors.New("operation requires -as <account> flag"))
	}

	client, err := ledgerClient()
	command.Check(err)

	bookkeeping, err := sequenceOptions(client, *asAccount)
	command.Check(err)

	options := bookkeeping
	if asTag != nil {
		options = append(options, tx.SetSourceTag(asTag))
	}

	if *issuerFlag {
		if *domainFlag == "" || *rateFlag == "" || *tickFlag == 0 {
			command.CheckUsage(errors.New("-issuer requires -domain, -rate, and -ticksize"))
		}
		percent, err := decimal.NewFromString(*rateFlag)
		if err != nil {
			command.CheckUsage(errors.Wrapf(err, "bad rate %q", *rateFlag))
		}
		accountSet, err := tx.NewIssuerAccountSet(*asAccount, *domainFlag, percent, uint8(*tickFlag), options...)
		command.Check(err)
		command.Check(emitTx(*jsonFlag, accountSet))
		command.V(1).Infof("prepared unsigned %s: issuer settings for %s", accountSet.GetType(), cmd.FormatAccount(accountSet.Account))
		return nil
	}
	if *managerFlag {
		if *domainFlag == "" {
			command.CheckUsage(errors.New("-manager requires -domain"))
		}
		accountSet, err := tx.NewManagerAccountSet(*asAccount, *domainFlag, options...)
		command.Check(err)
		command.Check(emitTx(*jsonFlag, accountSet))
		command.V(1).Infof("prepared unsigned %s: manager settings for %s", accountSet.GetType(), cmd.FormatAccount(accountSet.Account))
		return nil
	}

	options = append([]tx.Option{tx.SetAddress(asAccount)}, options...)

	for _, toggle := range []struct {
		name string
		on   bool
	}{
		{*setFlag, true},
		{*clearFlag, false},
	} {
		if toggle.name == "" {
			continue
		}
		asf, ok := tx.AsfFlagByName(toggle.name)
		if !ok {
			command.CheckUsage(errors.Errorf("unknown account flag %q", toggle.name))
		}
		options = append(options, tx.SetAccountFlag(asf, toggle.on))
	}

	if *domainFlag != "" {
		options = append(options, tx.SetDomain(*domainFlag))
	}
	if *rateFlag != "" {
		percent, err := decimal.NewFromString(*rateFlag)
		if err != nil {
			command.CheckUsage(errors.Wrapf(err, "bad rate %q", *rateFlag))
		}
		options = append(options, tx.SetTransferRate(percent))
	}
	if *tickFlag != 0 {
		options = append(options, tx.SetTickSize(uint8(*tickFlag)))
	}

	accountSet, err := tx.NewAccountSet(options...)
	command.Check(err)

	err = emitTx(*jsonFlag, accountSet)
	command.Check(err)

	command.V(1).Infof("prepared unsigned %s for %s", accountSet.GetType(), cmd.FormatAccount(accountSet.Account))
	return nil
}
