package admins

import (
	"github.com/iov-one/almoner"
	"github.com/iov-one/almoner/errors"
)

// Initializer fulfils the almoner.Initializer interface to load data
// from the genesis file.
type Initializer struct {
	// Validator resolves genesis identities into addresses. Required.
	Validator IdentityValidator
}

var _ almoner.Initializer = (*Initializer)(nil)

// FromGenesis initializes the roster and the donation currency from the
// "admins" genesis options. An empty roster is allowed, a missing or
// invalid donation denomination is not.
func (i *Initializer) FromGenesis(opts almoner.Options, db almoner.KVStore) error {
	var conf struct {
		Admins        []string `json:"admins"`
		DonationDenom string   `json:"donation_denom"`
	}
	if err := opts.ReadOptions("admins", &conf); err != nil {
		return errors.Wrap(err, "cannot load admins options")
	}
	if conf.DonationDenom == "" {
		return errors.Wrap(errors.ErrEmpty, "donation denom")
	}

	roster := make([]almoner.Address, 0, len(conf.Admins))
	for _, identity := range conf.Admins {
		addr, err := i.Validator(identity)
		if err != nil {
			return errors.Wrapf(errors.ErrInput, "identity %q: %s", identity, err)
		}
		roster = append(roster, addr)
	}
	if err := saveRoster(db, roster); err != nil {
		return err
	}
	return saveDenom(db, conf.DonationDenom)
}
