package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"src.d10.dev/command"

	"github.com/ObiajuluM/myrkle/book"
)

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     opBook,
		Name:        "book",
		Syntax:      "book [-seller] <taker-pays> <taker-gets>",
		Description: `Operation "book" ranks an order book.  Assets are XRP or <currency>/<issuer>.`,
	})
}

func opBook() error {
	sellerFlag := command.OperationFlagSet.Bool("seller", false, "rank best-for-seller (highest quality first); default is best-for-buyer")

	command.CheckUsage(command.ParseOperationFlagSet())

	argument := command.OperationFlagSet.Args()
	if len(argument) != 2 {
		return errors.New("operation requires <taker-pays> and <taker-gets> arguments")
	}

	pays, err := assetFromArg(argument[0])
	command.CheckUsage(err)
	gets, err := assetFromArg(argument[1])
	command.CheckUsage(err)

	client, err := ledgerClient()
	command.Check(err)

	result, err := client.BookOffers(pays, gets)
	command.Check(err)

	objective := book.BestForBuyer
	if *sellerFlag {
		objective = book.BestForSeller
	}

	ranked, issues := book.RankOrderBook(result.Offers, objective)
	for _, issue := range issues {
		command.Errorf("offer record %d skipped: %s", issue.Index, issue.Err)
	}

	table := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', tabwriter.DiscardEmptyColumns)
	fmt.Fprintln(table, "Rank\t Creator\t Taker Pays\t Taker Gets\t Quality\t Funded\t")
	for _, offer := range ranked {
		funded := ""
		if offer.CreatorLiquidity != nil {
			funded = formatAmount(*offer.CreatorLiquidity)
		}
		fmt.Fprintf(table, "%d\t %s\t %s\t %s\t %s\t %s\t\n",
			offer.Rank, offer.Creator, formatAmount(offer.TakerPays), formatAmount(offer.TakerGets),
			offer.Quality, funded)
	}
	err = table.Flush()

	command.V(1).Infof("%s: %d offer(s) ranked, %d skipped", objective, len(ranked), len(issues))
	return err
}
