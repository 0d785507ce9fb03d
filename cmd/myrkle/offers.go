package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"src.d10.dev/command"

	"github.com/ObiajuluM/myrkle/book"
	"github.com/ObiajuluM/myrkle/internal/cmd"
	"github.com/ObiajuluM/myrkle/tx"
)

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     opOffers,
		Name:        "offers",
		Syntax:      "offers <account>",
		Description: `Operation "offers" lists an account's resting liquidity offers.`,
	})
}

func opOffers() error {
	command.CheckUsage(command.ParseOperationFlagSet())

	argument := command.OperationFlagSet.Args()
	if len(argument) != 1 {
		return errors.New("operation requires <account> argument")
	}
	accounts, err := cmd.ParseAccountArg(argument)
	command.Check(err)

	client, err := ledgerClient()
	command.Check(err)

	result, err := client.AccountOffers(accounts[0].Account.String())
	command.Check(err)

	offers, issues := book.ListAccountLiquidity(result.Offers)
	for _, issue := range issues {
		command.Errorf("offer record %d skipped: %s", issue.Index, issue.Err)
	}

	table := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', tabwriter.DiscardEmptyColumns)
	fmt.Fprintln(table, "Sequence\t Taker Pays\t Taker Gets\t Rate\t Flags\t")
	for _, offer := range offers {
		fmt.Fprintf(table, "%d\t %s\t %s\t %s\t %s\t\n",
			offer.Sequence, formatAmount(offer.TakerPays), formatAmount(offer.TakerGets), offer.Rate,
			flagNames(tx.OfferFlags, offer.Flags))
	}
	err = table.Flush()

	command.V(1).Infof("%d resting offer(s), %d record(s) skipped", len(offers), len(issues))
	return err
}
