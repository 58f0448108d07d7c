package almoner

import (
	cmn "github.com/tendermint/tendermint/libs/common"
)

// CheckResult captures any non-error abci result to make sure people
// use error for error cases.
type CheckResult struct {
	// Data is a machine-parseable return value, like the id of a
	// created entity.
	Data []byte
	// Log is a human-readable informational string.
	Log string
	// GasAllocated is the maximum units of work we allow this tx to
	// perform.
	GasAllocated int64
}

// NewCheck sets the gas allocated and the log, the most common info
// needed to be set by a handler.
func NewCheck(gasAllocated int64, log string) *CheckResult {
	return &CheckResult{
		GasAllocated: gasAllocated,
		Log:          log,
	}
}

// DeliverResult captures any non-error abci result to make sure people
// use error for error cases.
type DeliverResult struct {
	// Data is a machine-parseable return value, like the id of a
	// created entity.
	Data []byte
	// Log is a human-readable informational string.
	Log string
	// Tags, if present, can be used to index and search the
	// transaction history.
	Tags []cmn.KVPair
}

// Tag is a shortcut to create an observability key-value pair attached
// to a DeliverResult.
func Tag(key, value string) cmn.KVPair {
	return cmn.KVPair{Key: []byte(key), Value: []byte(value)}
}
