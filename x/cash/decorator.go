package cash

import (
	"github.com/iov-one/almoner"
	"github.com/iov-one/almoner/errors"
	"github.com/iov-one/almoner/x"
)

// PaymentDecorator debits any payment attached to the transaction
// context from the main signer and credits the collector account,
// before the message handler runs. Because it runs inside the same
// cache wrap as the handler, a failed delivery returns the payment.
type PaymentDecorator struct {
	auth      x.Authenticator
	ctrl      Controller
	collector almoner.Address
}

var _ almoner.Decorator = PaymentDecorator{}

// NewPaymentDecorator returns a decorator crediting attached payments to
// the collector address.
func NewPaymentDecorator(auth x.Authenticator, ctrl Controller, collector almoner.Address) PaymentDecorator {
	return PaymentDecorator{
		auth:      auth,
		ctrl:      ctrl,
		collector: collector,
	}
}

func (d PaymentDecorator) Check(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx, next almoner.Checker) (*almoner.CheckResult, error) {
	if err := d.collect(ctx, db); err != nil {
		return nil, err
	}
	return next.Check(ctx, db, tx)
}

func (d PaymentDecorator) Deliver(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx, next almoner.Deliverer) (*almoner.DeliverResult, error) {
	if err := d.collect(ctx, db); err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

func (d PaymentDecorator) collect(ctx almoner.Context, db almoner.KVStore) error {
	payment, ok := almoner.GetPayment(ctx)
	if !ok || payment.IsZero() {
		return nil
	}
	payer := x.MainSigner(ctx, d.auth)
	if payer == nil {
		return errors.Wrap(errors.ErrUnauthorized, "payment without a signer")
	}
	if err := d.ctrl.MoveCoins(db, payer.Address(), d.collector, payment); err != nil {
		return errors.Wrap(err, "cannot collect payment")
	}
	return nil
}
