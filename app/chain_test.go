package app

import (
	"context"
	"testing"

	"github.com/iov-one/almoner/almtest"
	"github.com/iov-one/almoner/almtest/assert"
	"github.com/iov-one/almoner/errors"
	"github.com/iov-one/almoner/store"
)

func TestChain(t *testing.T) {
	d1 := &almtest.Decorator{}
	d2 := &almtest.Decorator{}
	d3 := &almtest.Decorator{}
	h := &almtest.Handler{}

	stack := ChainDecorators(d1, d2).Chain(d3).WithHandler(h)

	ctx := context.Background()
	db := store.MemStore()
	tx := &almtest.Tx{Msg: &almtest.Msg{RoutePath: "ok/go"}}

	if _, err := stack.Check(ctx, db, tx); err != nil {
		t.Fatalf("unexpected check error: %+v", err)
	}
	if _, err := stack.Deliver(ctx, db, tx); err != nil {
		t.Fatalf("unexpected deliver error: %+v", err)
	}

	for i, d := range []*almtest.Decorator{d1, d2, d3} {
		if got := d.CallCount(); got != 2 {
			t.Fatalf("decorator %d called %d times", i, got)
		}
	}
	assert.Equal(t, 2, h.CallCount())
}

func TestChainAbort(t *testing.T) {
	failing := &almtest.Decorator{
		CheckErr:   errors.ErrUnauthorized,
		DeliverErr: errors.ErrUnauthorized,
	}
	after := &almtest.Decorator{}
	h := &almtest.Handler{}

	stack := ChainDecorators(failing, after).WithHandler(h)

	ctx := context.Background()
	db := store.MemStore()
	tx := &almtest.Tx{Msg: &almtest.Msg{RoutePath: "ok/go"}}

	if _, err := stack.Check(ctx, db, tx); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want an unauthorized error, got %+v", err)
	}
	if _, err := stack.Deliver(ctx, db, tx); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want an unauthorized error, got %+v", err)
	}

	// The rest of the chain must not run once a decorator fails.
	assert.Equal(t, 0, after.CallCount())
	assert.Equal(t, 0, h.CallCount())
}
