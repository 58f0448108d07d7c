package app

import (
	"context"
	"testing"

	"github.com/iov-one/almoner"
	"github.com/iov-one/almoner/almtest"
	"github.com/iov-one/almoner/errors"
	"github.com/iov-one/almoner/store"
)

// writingHandler writes a fixed key-value pair before returning the
// configured error (if any).
type writingHandler struct {
	key, value []byte
	err        error
}

var _ almoner.Handler = writingHandler{}

func (h writingHandler) Check(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx) (*almoner.CheckResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &almoner.CheckResult{}, h.err
}

func (h writingHandler) Deliver(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx) (*almoner.DeliverResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &almoner.DeliverResult{}, h.err
}

// panicHandler panics on every call.
type panicHandler struct{}

var _ almoner.Handler = panicHandler{}

func (panicHandler) Check(almoner.Context, almoner.KVStore, almoner.Tx) (*almoner.CheckResult, error) {
	panic("check exploded")
}

func (panicHandler) Deliver(almoner.Context, almoner.KVStore, almoner.Tx) (*almoner.DeliverResult, error) {
	panic("deliver exploded")
}

func TestExecutorDeliverCommits(t *testing.T) {
	db := store.MemStore()
	h := writingHandler{key: []byte("hello"), value: []byte("world")}
	ex := NewExecutor(h, db, almoner.NewQueryRouter())

	tx := &almtest.Tx{Msg: &almtest.Msg{RoutePath: "ok/go"}}
	if _, err := ex.Deliver(context.Background(), tx); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	got, err := db.Get([]byte("hello"))
	if err != nil {
		t.Fatalf("cannot get: %+v", err)
	}
	if string(got) != "world" {
		t.Fatalf("write was not committed, got %q", got)
	}
}

func TestExecutorDeliverRollsBackOnError(t *testing.T) {
	db := store.MemStore()
	h := writingHandler{
		key:   []byte("hello"),
		value: []byte("world"),
		err:   errors.ErrState,
	}
	ex := NewExecutor(h, db, almoner.NewQueryRouter())

	tx := &almtest.Tx{Msg: &almtest.Msg{RoutePath: "ok/go"}}
	if _, err := ex.Deliver(context.Background(), tx); !errors.ErrState.Is(err) {
		t.Fatalf("want a state error, got %+v", err)
	}

	got, err := db.Get([]byte("hello"))
	if err != nil {
		t.Fatalf("cannot get: %+v", err)
	}
	if got != nil {
		t.Fatalf("failed delivery must not persist writes, got %q", got)
	}
}

func TestExecutorCheckNeverCommits(t *testing.T) {
	db := store.MemStore()
	h := writingHandler{key: []byte("hello"), value: []byte("world")}
	ex := NewExecutor(h, db, almoner.NewQueryRouter())

	tx := &almtest.Tx{Msg: &almtest.Msg{RoutePath: "ok/go"}}
	if _, err := ex.Check(context.Background(), tx); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	got, err := db.Get([]byte("hello"))
	if err != nil {
		t.Fatalf("cannot get: %+v", err)
	}
	if got != nil {
		t.Fatalf("check must not persist writes, got %q", got)
	}
}

type echoQuery struct{}

func (echoQuery) Query(db almoner.ReadOnlyKVStore, mod string, data []byte) ([]almoner.Model, error) {
	return []almoner.Model{almoner.Pair([]byte("echo"), data)}, nil
}

func TestExecutorQuery(t *testing.T) {
	qr := almoner.NewQueryRouter()
	qr.Register("/echo", echoQuery{})
	ex := NewExecutor(&almtest.Handler{}, store.MemStore(), qr)

	models, err := ex.Query("/echo", []byte("ping"))
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if len(models) != 1 || string(models[0].Value) != "ping" {
		t.Fatalf("unexpected response: %+v", models)
	}

	if _, err := ex.Query("/missing", nil); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want a not found error, got %+v", err)
	}
}

func TestExecutorRecoversFromPanic(t *testing.T) {
	db := store.MemStore()
	ex := NewExecutor(panicHandler{}, db, almoner.NewQueryRouter())

	tx := &almtest.Tx{Msg: &almtest.Msg{RoutePath: "ok/go"}}
	if _, err := ex.Check(context.Background(), tx); !errors.ErrPanic.Is(err) {
		t.Fatalf("want a panic error, got %+v", err)
	}
	if _, err := ex.Deliver(context.Background(), tx); !errors.ErrPanic.Is(err) {
		t.Fatalf("want a panic error, got %+v", err)
	}
}
