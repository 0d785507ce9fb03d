// Operation send
//
// Compose an unsigned Payment of XRP or an issuance.
package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rubblelabs/ripple/data"
	"src.d10.dev/command"

	"github.com/ObiajuluM/myrkle/internal/cmd"
	"github.com/ObiajuluM/myrkle/tx"
)

var zeroAccount data.Account

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     opSend,
		Name:        "send",
		Syntax:      "send [-sendmax=<amount>] [-partial] [-delivermin=<amount>] [-json] <beneficiary> <amount>",
		Description: `Operation "send" composes an unsigned payment from one account to another.`,
	})
}

func opSend() error {
	sendmaxFlag := command.OperationFlagSet.String("sendmax", "", "specify SendMax, allows cross-currency payment")
	partialFlag := command.OperationFlagSet.Bool("partial", false, "allow the payment to deliver less than the full amount")
	deliverminFlag := command.OperationFlagSet.String("delivermin", "", "least the beneficiary will accept from a partial payment")
	jsonFlag := command.OperationFlagSet.Bool("json", false, "emit JSON instead of the gob pipe encoding")

	command.CheckUsage(command.ParseOperationFlagSet())

	fail := false

	var sendMax *data.Amount
	if *sendmaxFlag != "" {
		var err error
		sendMax, err = cmd.AmountFromArg(*sendmaxFlag)
		if err != nil {
			command.Check(fmt.Errorf("bad sendmax (%q): %w", *sendmaxFlag, err))
		}
	}

	var deliverMin *data.Amount
	if *deliverminFlag != "" {
		if !*partialFlag {
			command.CheckUsage(errors.New("-delivermin applies only with -partial"))
		}
		var err error
		deliverMin, err = cmd.AmountFromArg(*deliverminFlag)
		if err != nil {
			command.Check(fmt.Errorf("bad delivermin (%q): %w", *deliverminFlag, err))
		}
	}

	argument := command.OperationFlagSet.Args()
	if len(argument) != 2 {
		command.CheckUsage(errors.New("operation requires <beneficiary> and <amount> arguments"))
	}

	var beneficiary data.Account
	var beneficiaryTag *uint32
	beneficiaryArg, err := cmd.ParseAccountArg(argument[0:1])
	if err != nil {
		command.Errorf("bad beneficiary address (%q): %s", argument[0], err)
		fail = true
	} else {
		beneficiary = beneficiaryArg[0].Account
		beneficiaryTag = beneficiaryArg[0].TagPointer()
	}

	payAmount, err := cmd.AmountFromArg(argument[1])
	if err != nil {
		command.Errorf("bad amount (%q): %s", argument[1], err)
		fail = true
	}

	// -as <account> is parsed in main.go
	if asAccount == nil {
		command.Errorf("operation requires -as <account> flag")
		fail = true
	}

	if fail {
		command.Exit()
	}

	client, err := ledgerClient()
	command.Check(err)

	bookkeeping, err := sequenceOptions(client, *asAccount)
	command.Check(err)

	// Ensure no ambiguity in amounts or issuers.
	if !payAmount.IsNative() && payAmount.Issuer == zeroAccount {
		command.V(1).Infof("using %s as %s issuer", beneficiary, payAmount.Currency)
		payAmount.Issuer = beneficiary
	}
	if sendMax == nil && !payAmount.IsNative() { // no sendmax on XRP payments
		sendMax = payAmount
	}
	if sendMax != nil && !sendMax.IsNative() && sendMax.Issuer == zeroAccount {
		sendMax.Issuer = *asAccount
	}

	options := []tx.Option{
		tx.SetAddress(asAccount),
		tx.SetAmount(payAmount),
		tx.SetDestination(beneficiary),
		tx.SetDestinationTag(beneficiaryTag),
	}
	if sendMax != nil {
		options = append(options, tx.SetSendMax(sendMax))
	}
	if *partialFlag {
		options = append(options, tx.SetPartialPayment(true))
	}
	if deliverMin != nil {
		options = append(options, tx.SetDeliverMin(deliverMin))
	}
	options = append(options, bookkeeping...)
	if asTag != nil {
		// the -as account's own tag wins over the application stamp
		options = append(options, tx.SetSourceTag(asTag))
	}

	payment, err := tx.NewPayment(options...)
	command.Check(err)

	err = emitTx(*jsonFlag, payment)
	command.Check(err)

	command.V(1).Infof("prepared unsigned %s of %s from %s to %s", payment.GetType(),
		cmd.FormatDataAmount(payment.Amount), cmd.FormatAccount(payment.Account), cmd.FormatAccount(payment.Destination))
	return nil
}
