package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"src.d10.dev/command"

	"github.com/ObiajuluM/myrkle/internal/cmd"
	"github.com/ObiajuluM/myrkle/wallet"
)

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     opHistory,
		Name:        "history",
		Syntax:      "history [-xrp|-tokens] <account>",
		Description: `Operation "history" shows an account's settled payments, split into sent and received.`,
	})
}

func opHistory() error {
	xrpFlag := command.OperationFlagSet.Bool("xrp", false, "native payments only")
	tokensFlag := command.OperationFlagSet.Bool("tokens", false, "issued-currency payments only")

	command.CheckUsage(command.ParseOperationFlagSet())

	argument := command.OperationFlagSet.Args()
	if len(argument) != 1 {
		return errors.New("operation requires <account> argument")
	}
	accounts, err := cmd.ParseAccountArg(argument)
	command.Check(err)

	kind := wallet.AllPayments
	switch {
	case *xrpFlag && *tokensFlag:
		return errors.New("-xrp and -tokens are mutually exclusive")
	case *xrpFlag:
		kind = wallet.XRPPayments
	case *tokensFlag:
		kind = wallet.TokenPayments
	}

	client, err := ledgerClient()
	command.Check(err)

	history, err := wallet.PaymentHistory(client, accounts[0].Account.String(), kind)
	command.Check(err)

	table := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', tabwriter.DiscardEmptyColumns)
	for _, section := range []struct {
		label    string
		payments []wallet.Payment
	}{
		{"Sent", history.Sent},
		{"Received", history.Received},
	} {
		fmt.Fprintf(table, "%s\t Counterparty\t Amount\t Fee XRP\t Result\t When\t Tx\t\n", section.label)
		for _, p := range section.payments {
			counterparty := p.Receiver
			if section.label == "Received" {
				counterparty = p.Sender
			}
			fmt.Fprintf(table, "\t %s\t %s\t %s\t %s\t %s\t %s\t\n",
				counterparty, formatAmount(p.Amount), p.Fee, p.Result,
				p.Timestamp.Format("2006-01-02 15:04"), p.TxID)
		}
	}
	return table.Flush()
}
