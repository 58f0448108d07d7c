package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/almoner"
	"github.com/iov-one/almoner/errors"
)

// isPath ensures route paths are in the "extension/action" form.
var isPath = regexp.MustCompile(`^[a-z0-9_]+/[a-z0-9_]+$`).MatchString

// Router allows us to register many handlers with different paths and
// then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux.
type Router struct {
	routes map[string]almoner.Handler
}

var _ almoner.Registry = Router{}
var _ almoner.Handler = Router{}

// NewRouter initializes a router with no routes.
func NewRouter() Router {
	return Router{
		routes: make(map[string]almoner.Handler, 10),
	}
}

// Handle adds a new handler for the given path. Panics on duplicate or
// malformed path.
func (r Router) Handle(path string, h almoner.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the registered handler for this path, or the
// notFoundHandler if no route matches.
func (r Router) handler(tx almoner.Tx) almoner.Handler {
	path := almoner.GetPath(tx)
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Check dispatches to the proper handler based on the message path.
func (r Router) Check(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx) (*almoner.CheckResult, error) {
	return r.handler(tx).Check(ctx, db, tx)
}

// Deliver dispatches to the proper handler based on the message path.
func (r Router) Deliver(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx) (*almoner.DeliverResult, error) {
	return r.handler(tx).Deliver(ctx, db, tx)
}

// notFoundHandler always returns an ErrNotFound failure, carrying the
// path that could not be routed.
type notFoundHandler string

var _ almoner.Handler = notFoundHandler("")

func (h notFoundHandler) Check(almoner.Context, almoner.KVStore, almoner.Tx) (*almoner.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(h))
}

func (h notFoundHandler) Deliver(almoner.Context, almoner.KVStore, almoner.Tx) (*almoner.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(h))
}
