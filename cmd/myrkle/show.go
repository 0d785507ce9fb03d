// Operation show
//
// Decode a piped transaction stream and print it as JSON, for
// inspecting what a composer produced before signing.
package main

import (
	"io"
	"os"

	"golang.org/x/sync/errgroup"
	"src.d10.dev/command"

	"github.com/rubblelabs/ripple/data"

	"github.com/ObiajuluM/myrkle/internal/marshal"
	"github.com/ObiajuluM/myrkle/internal/pipeline"
)

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     opShow,
		Name:        "show",
		Syntax:      "show [-json]",
		Description: `Operation "show" reads composed transactions from stdin and prints them as JSON.`,
	})
}

func opShow() error {
	jsonFlag := command.OperationFlagSet.Bool("json", false, "input is JSON rather than the gob pipe encoding")

	command.CheckUsage(command.ParseOperationFlagSet())

	in := make(chan data.Transaction)
	var g errgroup.Group
	g.Go(func() error {
		defer close(in)
		var err error
		if *jsonFlag {
			err = pipeline.DecodeInput(in, os.Stdin)
		} else {
			err = marshal.DecodeTransactions(os.Stdin, in)
		}
		if err == io.EOF {
			err = nil
		}
		return err
	})

	count := 0
	out := make(chan data.Transaction)
	g.Go(func() error {
		return pipeline.EncodeOutput(os.Stdout, out)
	})
	for tx := range in {
		count++
		out <- tx
	}
	close(out)

	err := g.Wait()
	command.Check(err)

	command.V(1).Infof("decoded %d transaction(s)", count)
	return nil
}
