package admins

import (
	"encoding/binary"
	"math"

	"github.com/iov-one/almoner"
	"github.com/iov-one/almoner/coin"
	"github.com/iov-one/almoner/errors"
)

var (
	rosterKey = []byte("_c:admins:roster")
	denomKey  = []byte("_c:admins:denom")
)

// maxRosterSeats is the highest seat count the roster codec can
// represent in its two byte count prefix.
const maxRosterSeats = math.MaxUint16

// PackageAccount is the account on which donations are collected before
// they are distributed. The address is derived from a condition no
// signer can fulfill.
func PackageAccount() almoner.Address {
	return almoner.NewCondition("admins", "seat", []byte("donations")).Address()
}

// saveRoster overwrites the stored roster. Seat order and duplicates
// are preserved. Rosters beyond the codec capacity are rejected before
// anything is written.
func saveRoster(db almoner.KVStore, roster []almoner.Address) error {
	if len(roster) > maxRosterSeats {
		return errors.Wrapf(errors.ErrInput, "roster of %d seats exceeds the %d seat limit", len(roster), maxRosterSeats)
	}
	raw := make([]byte, 2+len(roster)*almoner.AddressLength)
	binary.BigEndian.PutUint16(raw, uint16(len(roster)))
	for i, a := range roster {
		copy(raw[2+i*almoner.AddressLength:], a)
	}
	return errors.Wrap(db.Set(rosterKey, raw), "cannot store roster")
}

// loadRoster returns the stored roster. A missing cell means the
// extension was never initialized and is a state error.
func loadRoster(db almoner.ReadOnlyKVStore) ([]almoner.Address, error) {
	raw, err := db.Get(rosterKey)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load roster")
	}
	if raw == nil {
		return nil, errors.Wrap(errors.ErrState, "roster not initialized")
	}
	return decodeRoster(raw)
}

func decodeRoster(raw []byte) ([]almoner.Address, error) {
	if len(raw) < 2 {
		return nil, errors.Wrap(errors.ErrState, "truncated roster")
	}
	count := int(binary.BigEndian.Uint16(raw))
	raw = raw[2:]
	if len(raw) != count*almoner.AddressLength {
		return nil, errors.Wrapf(errors.ErrState, "roster of %d seats has %d payload bytes", count, len(raw))
	}
	roster := make([]almoner.Address, count)
	for i := range roster {
		roster[i] = almoner.Address(raw[i*almoner.AddressLength : (i+1)*almoner.AddressLength])
	}
	return roster, nil
}

func hasSeat(roster []almoner.Address, addr almoner.Address) bool {
	for _, a := range roster {
		if a.Equals(addr) {
			return true
		}
	}
	return false
}

func saveDenom(db almoner.KVStore, denom string) error {
	if !coin.IsCC(denom) {
		return errors.Wrapf(errors.ErrCurrency, "invalid donation denom: %q", denom)
	}
	return errors.Wrap(db.Set(denomKey, []byte(denom)), "cannot store denom")
}

// loadDenom returns the configured donation currency. A missing cell
// means the extension was never initialized and is a state error.
func loadDenom(db almoner.ReadOnlyKVStore) (string, error) {
	raw, err := db.Get(denomKey)
	if err != nil {
		return "", errors.Wrap(err, "cannot load denom")
	}
	if raw == nil {
		return "", errors.Wrap(errors.ErrState, "denom not initialized")
	}
	return string(raw), nil
}
