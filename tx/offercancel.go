package tx

import (
	"github.com/pkg/errors"
	"github.com/rubblelabs/ripple/data"
)

func NewOfferCancel(options ...Option) (*data.OfferCancel, error) {
	tx := &data.OfferCancel{
		TxBase: data.TxBase{
			TransactionType: data.OFFER_CANCEL,
		},
	}
	err := Prepare(tx, options...)
	return tx, err
}

// SetOfferSequence names the offer to cancel by the sequence number of
// the transaction that created it.
func SetOfferSequence(offerSeq uint32) Option {
	return func(tx data.Transaction) error {
		t, ok := tx.(*data.OfferCancel)
		if !ok {
			return errors.Errorf("expected OfferCancel transaction, got %s", tx.GetBase().TransactionType)
		}
		t.OfferSequence = offerSeq
		return nil
	}
}
