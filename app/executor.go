package app

import (
	"github.com/iov-one/almoner"
	"github.com/iov-one/almoner/errors"
)

// Executor runs transactions against a cache-wrapped view of the store,
// committing writes only when the handler succeeds. Check runs never
// touch the underlying store.
type Executor struct {
	handler almoner.Handler
	store   almoner.CacheableKVStore
	queries almoner.QueryRouter
}

// NewExecutor binds a handler stack (usually decorators chained over a
// router) and a query router to a cacheable store.
func NewExecutor(h almoner.Handler, kv almoner.CacheableKVStore, qr almoner.QueryRouter) *Executor {
	return &Executor{
		handler: h,
		store:   kv,
		queries: qr,
	}
}

// Check executes the handler against a throwaway cache. All writes are
// discarded regardless of the outcome.
func (ex *Executor) Check(ctx almoner.Context, tx almoner.Tx) (res *almoner.CheckResult, err error) {
	defer errors.Recover(&err)

	cache := ex.store.CacheWrap()
	defer cache.Discard()

	res, err = ex.handler.Check(ctx, cache, tx)
	if err != nil {
		almoner.GetLogger(ctx).With("err", err).Debug("rejected during check")
		return nil, err
	}
	return res, nil
}

// Deliver executes the handler against a cache that is written through
// to the store on success and discarded on any failure, so a failed
// transaction leaves no partial writes behind.
func (ex *Executor) Deliver(ctx almoner.Context, tx almoner.Tx) (res *almoner.DeliverResult, err error) {
	defer errors.Recover(&err)

	cache := ex.store.CacheWrap()

	logger := almoner.GetLogger(ctx).With("path", almoner.GetPath(tx))

	res, err = ex.handler.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		logger.With("err", err).Info("transaction rolled back")
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "cannot write cache")
	}
	logger.Debug("transaction delivered")
	return res, nil
}

// Query runs a read-only query against the committed state.
func (ex *Executor) Query(path string, data []byte) ([]almoner.Model, error) {
	h := ex.queries.Handler(path)
	if h == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "no query handler for %q", path)
	}
	return h.Query(ex.store, "", data)
}
