package almtest

import (
	"sync"

	"github.com/iov-one/almoner"
)

// Handler is a configurable Handler double counting how many times it
// was used. Safe for concurrent use.
type Handler struct {
	mu sync.Mutex

	checkCall   int
	CheckResult *almoner.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult *almoner.DeliverResult
	DeliverErr    error
}

var _ almoner.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx) (*almoner.CheckResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.checkCall++
	return h.CheckResult, h.CheckErr
}

func (h *Handler) Deliver(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx) (*almoner.DeliverResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.deliverCall++
	return h.DeliverResult, h.DeliverErr
}

// CheckCallCount returns the number of times Check was called.
func (h *Handler) CheckCallCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.checkCall
}

// DeliverCallCount returns the number of times Deliver was called.
func (h *Handler) DeliverCallCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.deliverCall
}

// CallCount returns the total number of Check and Deliver calls.
func (h *Handler) CallCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.checkCall + h.deliverCall
}
