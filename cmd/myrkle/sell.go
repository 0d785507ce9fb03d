// Operation sell
//
// Compose an unsigned OfferCreate to sell one asset for another.
package main

import (
	"github.com/pkg/errors"
	"github.com/rubblelabs/ripple/data"
	"golang.org/x/sync/errgroup"
	"src.d10.dev/command"

	"github.com/ObiajuluM/myrkle/book"
	"github.com/ObiajuluM/myrkle/internal/cmd"
	"github.com/ObiajuluM/myrkle/rpc"
	"github.com/ObiajuluM/myrkle/tx"
)

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     opSell,
		Name:        "sell",
		Syntax:      "sell [-passive] [-fok|-ioc] [-json] <amount> for <amount>",
		Description: `Operation "sell" composes an unsigned offer to sell one asset or issuance for another.`,
	})
}

func opSell() error {
	passiveFlag := command.OperationFlagSet.Bool("passive", false, "rest in the book without consuming crossing offers")
	fokFlag := command.OperationFlagSet.Bool("fok", false, "fill or kill: execute entirely or not at all")
	iocFlag := command.OperationFlagSet.Bool("ioc", false, "immediate or cancel: take what crosses, rest nothing")
	jsonFlag := command.OperationFlagSet.Bool("json", false, "emit JSON instead of the gob pipe encoding")

	command.CheckUsage(command.ParseOperationFlagSet())

	argument := command.OperationFlagSet.Args()
	// Make the user type "for", less likely to mistakenly reverse the amounts.
	if len(argument) != 3 || argument[1] != "for" {
		command.CheckUsage(errors.New("expected `sell <amount> for <amount>`"))
	}

	takerGets, err := cmd.AmountFromArg(argument[0])
	if err != nil {
		command.Check(errors.Wrapf(err, "expected amount to sell, got %q", argument[0]))
	}
	takerPays, err := cmd.AmountFromArg(argument[2])
	if err != nil {
		command.Check(errors.Wrapf(err, "expected 'taker pays' amount, got %q", argument[2]))
	}

	if asAccount == nil {
		command.Check(errors.New("operation requires -as <account> flag"))
	}

	client, err := ledgerClient()
	command.Check(err)

	// Fetch sequence bookkeeping and the opposing book in parallel;
	// the book shows what the new offer would cross.
	var g errgroup.Group
	var bookkeeping []tx.Option
	var opposing *rpc.BookOffersResult

	g.Go(func() error {
		var err error
		bookkeeping, err = sequenceOptions(client, *asAccount)
		return err
	})
	g.Go(func() error {
		var err error
		opposing, err = client.BookOffers(assetOf(takerGets), assetOf(takerPays))
		return err
	})
	err = g.Wait()
	command.Check(err)

	if ranked, _ := book.RankOrderBook(opposing.Offers, book.BestForSeller); len(ranked) > 0 {
		best := ranked[0]
		command.V(1).Infof("best opposing offer: pays %s for %s (quality %s)",
			formatAmount(best.TakerPays), formatAmount(best.TakerGets), best.Quality)
	}

	mode := tx.SwapMode{FillOrKill: *fokFlag, ImmediateOrCancel: *iocFlag}

	options := append([]tx.Option(nil), bookkeeping...)
	if asTag != nil {
		options = append(options, tx.SetSourceTag(asTag))
	}

	var offer *data.OfferCreate
	if *passiveFlag {
		offer, err = tx.NewLiquidityOffer(*asAccount, takerPays, takerGets, nil, options...)
	} else {
		offer, err = tx.NewBookSwap(*asAccount, takerPays, takerGets, mode, options...)
	}
	command.Check(err)

	err = emitTx(*jsonFlag, offer)
	command.Check(err)

	command.V(1).Infof("prepared unsigned %s: %s sells %s for %s",
		offer.GetType(), cmd.FormatAccount(offer.Account),
		cmd.FormatDataAmount(offer.TakerGets), cmd.FormatDataAmount(offer.TakerPays))
	return nil
}

// assetOf reduces an amount to its book side.
func assetOf(amt *data.Amount) rpc.Asset {
	if amt.IsNative() {
		return rpc.NativeAsset()
	}
	return rpc.Asset{Currency: amt.Currency.String(), Issuer: amt.Issuer.String()}
}
