// Operation cancel
//
// Compose an unsigned OfferCancel.  The offer's sequence number is
// its cancellation key; find it with `myrkle offers`.
package main

import (
	"strconv"

	"github.com/pkg/errors"
	"src.d10.dev/command"

	"github.com/ObiajuluM/myrkle/internal/cmd"
	"github.com/ObiajuluM/myrkle/tx"
)

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     opCancel,
		Name:        "cancel",
		Syntax:      "cancel [-json] <offer-sequence>",
		Description: `Operation "cancel" composes an unsigned OfferCancel for a resting offer.`,
	})
}

func opCancel() error {
	jsonFlag := command.OperationFlagSet.Bool("json", false, "emit JSON instead of the gob pipe encoding")

	command.CheckUsage(command.ParseOperationFlagSet())

	argument := command.OperationFlagSet.Args()
	if len(argument) != 1 {
		command.CheckUsage(errors.New("operation requires <offer-sequence> argument"))
	}
	offerSeq, err := strconv.ParseUint(argument[0], 10, 32)
	if err != nil {
		command.CheckUsage(errors.Wrapf(err, "bad offer sequence %q", argument[0]))
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
		tx.SetOfferSequence(uint32(offerSeq)),
	}, bookkeeping...)
	if asTag != nil {
		options = append(options, tx.SetSourceTag(asTag))
	}

	cancel, err := tx.NewOfferCancel(options...)
	command.Check(err)

	err = emitTx(*jsonFlag, cancel)
	command.Check(err)

	command.V(1).Infof("prepared unsigned %s: %s cancels offer %d", cancel.GetType(), cmd.FormatAccount(cancel.Account), cancel.OfferSequence)
	return nil
}
