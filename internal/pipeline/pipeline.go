// Package pipeline encodes and decodes transactions on stdin/stdout
// as JSON, the human-inspectable alternative to the gob stream in
// internal/marshal.
package pipeline

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/rubblelabs/ripple/data"
)

func DecodeInput(c chan data.Transaction, r io.Reader) error {
	dec := json.NewDecoder(r)

	for dec.More() {
		// rubblelabs decodes the concrete transaction type via
		// TransactionWithMetaData, even with no metadata present
		tx := &data.TransactionWithMetaData{}

		err := dec.Decode(tx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		c <- tx.Transaction // empty metadata discarded here
	}

	return nil
}

func EncodeOutput(w io.Writer, c chan data.Transaction) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")

	for tx := range c {
		err := enc.Encode(tx)
		if err != nil {
			return err
		}
	}
	return nil
}
