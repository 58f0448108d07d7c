package almtest

import (
	"sync"

	"github.com/iov-one/almoner"
)

// Decorator is a Decorator double counting how many times it was used.
// Unless configured with an error it always calls through to the next
// handler.
type Decorator struct {
	mu sync.Mutex

	checkCall int
	// CheckErr if set is returned instead of calling the next handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned instead of calling the next handler.
	DeliverErr error
}

var _ almoner.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx, next almoner.Checker) (*almoner.CheckResult, error) {
	d.mu.Lock()
	d.checkCall++
	err := d.CheckErr
	d.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx, next almoner.Deliverer) (*almoner.DeliverResult, error) {
	d.mu.Lock()
	d.deliverCall++
	err := d.DeliverErr
	d.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

// CheckCallCount returns the number of times Check was called.
func (d *Decorator) CheckCallCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.checkCall
}

// DeliverCallCount returns the number of times Deliver was called.
func (d *Decorator) DeliverCallCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.deliverCall
}

// CallCount returns the total number of Check and Deliver calls.
func (d *Decorator) CallCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.checkCall + d.deliverCall
}
