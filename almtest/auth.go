package almtest

import (
	"context"

	"github.com/iov-one/almoner"
)

// Auth is an Authenticator implementation that returns a fixed set of
// conditions, regardless of the context content.
type Auth struct {
	// Signer is returned if set and Signers is empty.
	Signer almoner.Condition
	// Signers take precedence over Signer.
	Signers []almoner.Condition
}

func (a *Auth) GetConditions(almoner.Context) []almoner.Condition {
	if len(a.Signers) > 0 {
		return a.Signers
	}
	if a.Signer != nil {
		return []almoner.Condition{a.Signer}
	}
	return nil
}

func (a *Auth) HasAddress(ctx almoner.Context, addr almoner.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if s.Address().Equals(addr) {
			return true
		}
	}
	return false
}

// CtxAuth is an Authenticator reading conditions from the context under
// a given key. Use SetConditions to prime the context in a test.
type CtxAuth struct {
	Key string
}

func (a *CtxAuth) SetConditions(ctx almoner.Context, conds ...almoner.Condition) almoner.Context {
	return context.WithValue(ctx, a.Key, conds)
}

func (a *CtxAuth) GetConditions(ctx almoner.Context) []almoner.Condition {
	conds, ok := ctx.Value(a.Key).([]almoner.Condition)
	if !ok {
		return nil
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx almoner.Context, addr almoner.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if s.Address().Equals(addr) {
			return true
		}
	}
	return false
}
