package cash

import (
	"testing"

	"github.com/iov-one/almoner"
	"github.com/iov-one/almoner/coin"
	"github.com/iov-one/almoner/errors"
	"github.com/iov-one/almoner/store"
)

func TestMoveCoins(t *testing.T) {
	src := almoner.NewCondition("sigs", "ed25519", []byte("source")).Address()
	dst := almoner.NewCondition("sigs", "ed25519", []byte("destination")).Address()

	cases := map[string]struct {
		funds       coin.Coin
		move        coin.Coin
		wantErr     *errors.Error
		wantSrcLeft coin.Coin
		wantDstHeld coin.Coin
	}{
		"full transfer": {
			funds:       coin.NewCoin(5, "eth"),
			move:        coin.NewCoin(5, "eth"),
			wantSrcLeft: coin.NewCoin(0, "eth"),
			wantDstHeld: coin.NewCoin(5, "eth"),
		},
		"partial transfer": {
			funds:       coin.NewCoin(5, "eth"),
			move:        coin.NewCoin(2, "eth"),
			wantSrcLeft: coin.NewCoin(3, "eth"),
			wantDstHeld: coin.NewCoin(2, "eth"),
		},
		"insufficient funds": {
			funds:   coin.NewCoin(1, "eth"),
			move:    coin.NewCoin(2, "eth"),
			wantErr: errors.ErrAmount,
		},
		"wrong currency": {
			funds:   coin.NewCoin(5, "btc"),
			move:    coin.NewCoin(2, "eth"),
			wantErr: errors.ErrAmount,
		},
		"zero transfer": {
			funds:   coin.NewCoin(5, "eth"),
			move:    coin.NewCoin(0, "eth"),
			wantErr: errors.ErrAmount,
		},
		"negative transfer": {
			funds:   coin.NewCoin(5, "eth"),
			move:    coin.NewCoin(-2, "eth"),
			wantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()

			if err := ctrl.CoinMint(db, src, tc.funds); err != nil {
				t.Fatalf("cannot mint: %s", err)
			}

			if err := ctrl.MoveCoins(db, src, dst, tc.move); !tc.wantErr.Is(err) {
				t.Fatalf("want %v, got %+v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				// A failed move must not change any balance.
				held, err := ctrl.Balance(db, src, tc.funds.Ticker)
				if err != nil {
					t.Fatal(err)
				}
				if !held.Equals(tc.funds) {
					t.Fatalf("source balance changed: %s", held)
				}
				return
			}

			left, err := ctrl.Balance(db, src, tc.move.Ticker)
			if err != nil {
				t.Fatal(err)
			}
			if !left.Equals(tc.wantSrcLeft) {
				t.Fatalf("unexpected source balance: %s", left)
			}

			held, err := ctrl.Balance(db, dst, tc.move.Ticker)
			if err != nil {
				t.Fatal(err)
			}
			if !held.Equals(tc.wantDstHeld) {
				t.Fatalf("unexpected destination balance: %s", held)
			}
		})
	}
}

func TestMintAccumulates(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	addr := almoner.NewCondition("sigs", "ed25519", []byte("account")).Address()

	if err := ctrl.CoinMint(db, addr, coin.NewCoin(3, "eth")); err != nil {
		t.Fatal(err)
	}
	if err := ctrl.CoinMint(db, addr, coin.NewCoin(4, "eth")); err != nil {
		t.Fatal(err)
	}

	balance, err := ctrl.Balance(db, addr, "eth")
	if err != nil {
		t.Fatal(err)
	}
	if !balance.Equals(coin.NewCoin(7, "eth")) {
		t.Fatalf("unexpected balance: %s", balance)
	}
}

func TestEmptyAccountHoldsZero(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	addr := almoner.NewCondition("sigs", "ed25519", []byte("nobody")).Address()

	balance, err := ctrl.Balance(db, addr, "eth")
	if err != nil {
		t.Fatal(err)
	}
	if !balance.IsZero() {
		t.Fatalf("unexpected balance: %s", balance)
	}
}
