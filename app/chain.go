package app

import "github.com/iov-one/almoner"

// Decorators holds a chain of decorators, not yet bound to a handler.
type Decorators struct {
	chain []almoner.Decorator
}

// ChainDecorators takes a chain of decorators. The first decorator wraps
// all the others, which are called in order until the final Handler set
// with WithHandler.
func ChainDecorators(chain ...almoner.Decorator) Decorators {
	return Decorators{chain: chain}
}

// Chain appends more decorators to the end of the chain.
func (d Decorators) Chain(chain ...almoner.Decorator) Decorators {
	return Decorators{chain: append(d.chain, chain...)}
}

// WithHandler binds the chain to a handler, returning a new Handler
// that executes the whole stack.
func (d Decorators) WithHandler(h almoner.Handler) almoner.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = chainStep{d: d.chain[i], next: h}
	}
	return h
}

// chainStep binds one decorator to its next handler, itself satisfying
// the Handler interface.
type chainStep struct {
	d    almoner.Decorator
	next almoner.Handler
}

var _ almoner.Handler = chainStep{}

func (s chainStep) Check(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx) (*almoner.CheckResult, error) {
	return s.d.Check(ctx, db, tx, s.next)
}

func (s chainStep) Deliver(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx) (*almoner.DeliverResult, error) {
	return s.d.Deliver(ctx, db, tx, s.next)
}
