package almtest

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/iov-one/almoner"
)

var conditionCounter uint64

// NewCondition returns a new, unique condition. Each call returns a
// different value, so generated conditions never collide within a test.
func NewCondition() almoner.Condition {
	c := atomic.AddUint64(&conditionCounter, 1)
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, c)
	return almoner.NewCondition("almtest", "seq", data)
}
