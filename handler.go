package almoner

import (
	"encoding/json"
)

// Handler is a core engine that can process a few specific messages.
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a transaction.
// It is its own interface to allow better type controls in decorators.
type Checker interface {
	Check(ctx Context, db KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a transaction.
type Deliverer interface {
	Deliver(ctx Context, db KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality
// like authentication, or payment handling, to many Handlers.
type Decorator interface {
	Check(ctx Context, db KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, db KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry is an interface to register your handler,
// the setup side of a Router.
type Registry interface {
	Handle(path string, h Handler)
}

// Options are the application initialization options. Each extension can
// look up its key and parse the raw JSON as desired.
type Options map[string]json.RawMessage

// ReadOptions reads the value stored under a given key and parses the JSON
// into the given obj. Returns an error if it cannot parse. Noop and no error
// if the key is missing.
func (o Options) ReadOptions(key string, obj interface{}) error {
	raw := o[key]
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, obj)
}

// Initializer implementations are used to create the initial persistent
// state of an extension from the genesis options.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}
