package almoner

import (
	"context"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/almoner/coin"
)

// Context is just an alias for the standard implementation. We use functions
// to extend it to our domain.
//
// There should exist two functions for every XYZ of type T that we want to
// support in Context:
//
//   WithXYZ(Context, T) Context
//   XYZ(Context) (val T, ok bool)
type Context = context.Context

type contextKey int

const (
	contextKeyHeight contextKey = iota
	contextKeyChainID
	contextKeyLogger
	contextKeyPayment
)

// DefaultLogger is used for all contexts that have not set anything
// themselves.
var DefaultLogger = log.NewNopLogger()

// WithHeight sets the block height for the Context.
func WithHeight(ctx Context, height int64) Context {
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height, ok is false if no height set.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithChainID sets the chain id for the Context.
func WithChainID(ctx Context, chainID string) Context {
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the chain id stored in the context, or an empty string.
func GetChainID(ctx Context) string {
	val, _ := ctx.Value(contextKeyChainID).(string)
	return val
}

// WithLogger sets the logger for this Context.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the logger stored in the context, or DefaultLogger.
func GetLogger(ctx Context) log.Logger {
	if logger, ok := ctx.Value(contextKeyLogger).(log.Logger); ok {
		return logger
	}
	return DefaultLogger
}

// WithPayment attaches a payment to the Context. The payment is a side
// channel provided by the host alongside an execute call and represents
// funds already credited to the contract account.
func WithPayment(ctx Context, payment coin.Coin) Context {
	return context.WithValue(ctx, contextKeyPayment, payment)
}

// GetPayment returns the payment attached to this call. ok is false when
// the caller attached no funds.
func GetPayment(ctx Context) (coin.Coin, bool) {
	val, ok := ctx.Value(contextKeyPayment).(coin.Coin)
	return val, ok
}
