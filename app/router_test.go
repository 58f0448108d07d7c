package app

import (
	"context"
	"testing"

	"github.com/iov-one/almoner/almtest"
	"github.com/iov-one/almoner/almtest/assert"
	"github.com/iov-one/almoner/errors"
	"github.com/iov-one/almoner/store"
)

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()

	registered := &almtest.Handler{}
	r.Handle("good/path", registered)

	ctx := context.Background()
	db := store.MemStore()

	registeredTx := &almtest.Tx{Msg: &almtest.Msg{RoutePath: "good/path"}}
	missingTx := &almtest.Tx{Msg: &almtest.Msg{RoutePath: "bad/path"}}

	if _, err := r.Check(ctx, db, registeredTx); err != nil {
		t.Fatalf("unexpected check error: %+v", err)
	}
	if _, err := r.Deliver(ctx, db, registeredTx); err != nil {
		t.Fatalf("unexpected deliver error: %+v", err)
	}
	assert.Equal(t, 1, registered.CheckCallCount())
	assert.Equal(t, 1, registered.DeliverCallCount())

	if _, err := r.Check(ctx, db, missingTx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want a not found error, got %+v", err)
	}
	if _, err := r.Deliver(ctx, db, missingTx); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want a not found error, got %+v", err)
	}
	assert.Equal(t, 2, registered.CallCount())
}

func TestRouterRegistration(t *testing.T) {
	r := NewRouter()
	r.Handle("good/path", &almtest.Handler{})

	assert.Panics(t, func() {
		r.Handle("good/path", &almtest.Handler{})
	})
	assert.Panics(t, func() {
		r.Handle("no-separator", &almtest.Handler{})
	})
	assert.Panics(t, func() {
		r.Handle("Bad/Path", &almtest.Handler{})
	})
}
