package cash

import (
	"encoding/binary"
	"fmt"

	"github.com/iov-one/almoner"
	"github.com/iov-one/almoner/coin"
	"github.com/iov-one/almoner/errors"
)

// Controller manages the funds stored by accounts without exposing the
// raw storage layout to the rest of the application.
type Controller struct{}

// NewController returns a controller instance.
func NewController() Controller {
	return Controller{}
}

// Balance returns the amount of the given currency held by an address.
// An account that was never funded holds a zero balance.
func (c Controller) Balance(db almoner.ReadOnlyKVStore, addr almoner.Address, ticker string) (coin.Coin, error) {
	raw, err := db.Get(accountKey(addr, ticker))
	if err != nil {
		return coin.Coin{}, errors.Wrap(err, "cannot load account")
	}
	if raw == nil {
		return coin.NewCoin(0, ticker), nil
	}
	return coin.NewCoin(decodeAmount(raw), ticker), nil
}

// MoveCoins moves the given amount from src to dest. If src doesn't hold
// sufficient funds, it fails.
func (c Controller) MoveCoins(db almoner.KVStore, src, dest almoner.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %s", amount)
	}

	sender, err := c.Balance(db, src, amount.Ticker)
	if err != nil {
		return err
	}
	if !sender.IsGTE(amount) {
		return errors.Wrapf(errors.ErrAmount, "insufficient funds: %s holds %s", src, sender)
	}

	recipient, err := c.Balance(db, dest, amount.Ticker)
	if err != nil {
		return err
	}

	sender, err = sender.Subtract(amount)
	if err != nil {
		return err
	}
	recipient, err = recipient.Add(amount)
	if err != nil {
		return err
	}

	if err := c.save(db, src, sender); err != nil {
		return err
	}
	return c.save(db, dest, recipient)
}

// CoinMint issues the given amount of coins onto the destination
// account, out of thin air. This is used to set up the initial funds.
func (c Controller) CoinMint(db almoner.KVStore, dest almoner.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive mint: %s", amount)
	}
	balance, err := c.Balance(db, dest, amount.Ticker)
	if err != nil {
		return err
	}
	balance, err = balance.Add(amount)
	if err != nil {
		return err
	}
	return c.save(db, dest, balance)
}

func (c Controller) save(db almoner.KVStore, addr almoner.Address, balance coin.Coin) error {
	key := accountKey(addr, balance.Ticker)
	if balance.IsZero() {
		return errors.Wrap(db.Delete(key), "cannot delete account")
	}
	return errors.Wrap(db.Set(key, encodeAmount(balance.Amount)), "cannot save account")
}

// accountKey returns the storage cell of the balance a single address
// holds in a single currency.
func accountKey(addr almoner.Address, ticker string) []byte {
	return []byte(fmt.Sprintf("cash:%s:%s", addr, ticker))
}

func encodeAmount(amount int64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(amount))
	return raw
}

func decodeAmount(raw []byte) int64 {
	return int64(binary.BigEndian.Uint64(raw))
}
