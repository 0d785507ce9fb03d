// Package marshal moves unsigned transactions between processes as
// hex-wrapped gob.  Composers write a stream to stdout; a signing
// tool reads it back on stdin.
package marshal

import (
	"encoding/gob"
	"encoding/hex"
	"io"

	"github.com/rubblelabs/ripple/data"
)

func register() {
	// When decoding, gob needs the concrete types declared in
	// advance.  Register on encode too, to spare callers the
	// trouble.  Every transaction type a composer emits belongs
	// here.
	gob.Register(&data.AccountSet{})
	gob.Register(&data.OfferCancel{})
	gob.Register(&data.OfferCreate{})
	gob.Register(&data.Payment{})
	gob.Register(&data.TrustSet{})
}

// DecodeTransactions reads transactions from in until EOF, sending
// each to txs.  Returns io.EOF at end of input.
func DecodeTransactions(in io.Reader, txs chan data.Transaction) error {
	register()

	// Input is gob wrapped in hex.  Hex over base64 because the
	// base64 encoder buffers, which delays piped output between
	// processes.
	outerDecoder := hex.NewDecoder(in)
	gobDecoder := gob.NewDecoder(outerDecoder)

	for {
		var tx data.Transaction
		err := gobDecoder.Decode(&tx) // decode into *pointer* to interface
		if err != nil {
			return err
		}
		txs <- tx
	}
}

// EncodeTransactions writes each transaction from txs to out until
// the channel closes.
func EncodeTransactions(out io.Writer, txs chan data.Transaction) error {
	register()

	outerEncoder := hex.NewEncoder(out)
	gobEncoder := gob.NewEncoder(outerEncoder)

	for tx := range txs {
		err := gobEncoder.Encode(&tx) // encode a *pointer* to the interface
		if err != nil {
			return err
		}
	}
	return nil
}
