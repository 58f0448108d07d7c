package admins

import (
	"strconv"

	cmn "github.com/tendermint/tendermint/libs/common"

	"github.com/iov-one/almoner"
	"github.com/iov-one/almoner/coin"
	"github.com/iov-one/almoner/errors"
	"github.com/iov-one/almoner/x"
)

const (
	addMembersCost int64 = 100
	leaveCost      int64 = 50
	donateCost     int64 = 200
)

// IdentityValidator resolves a caller-provided identity into its
// canonical address. What identities look like is up to the host
// environment, the handlers only require deterministic resolution.
type IdentityValidator func(identity string) (almoner.Address, error)

// HexIdentityValidator accepts hex encoded addresses as identities.
func HexIdentityValidator(identity string) (almoner.Address, error) {
	return almoner.ParseAddress(identity)
}

// CashController moves funds between accounts. x/cash.Controller
// satisfies this interface.
type CashController interface {
	MoveCoins(db almoner.KVStore, src, dest almoner.Address, amount coin.Coin) error
}

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r almoner.Registry, auth x.Authenticator, valid IdentityValidator, ctrl CashController) {
	r.Handle(pathAddMembers, &addMembersHandler{auth: auth, valid: valid})
	r.Handle(pathLeave, &leaveHandler{auth: auth})
	r.Handle(pathDonate, &donateHandler{ctrl: ctrl})
}

type addMembersHandler struct {
	auth  x.Authenticator
	valid IdentityValidator
}

var _ almoner.Handler = (*addMembersHandler)(nil)

func (h *addMembersHandler) Check(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx) (*almoner.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return almoner.NewCheck(addMembersCost, ""), nil
}

func (h *addMembersHandler) Deliver(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx) (*almoner.DeliverResult, error) {
	roster, members, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	roster = append(roster, members...)
	if err := saveRoster(db, roster); err != nil {
		return nil, err
	}

	tags := []cmn.KVPair{
		almoner.Tag("action", "add_members"),
		almoner.Tag("added_count", strconv.Itoa(len(members))),
	}
	for _, m := range members {
		tags = append(tags, almoner.Tag("admin_added", m.String()))
	}
	return &almoner.DeliverResult{Tags: tags}, nil
}

// validate returns the current roster together with the resolved
// addresses of the new members.
func (h *addMembersHandler) validate(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx) ([]almoner.Address, []almoner.Address, error) {
	var msg AddMembersMsg
	if err := almoner.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, nil, err
	}

	roster, err := loadRoster(db)
	if err != nil {
		return nil, nil, err
	}

	sender := x.MainSigner(ctx, h.auth)
	if sender == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	if !hasSeat(roster, sender.Address()) {
		return nil, nil, errors.Wrapf(errors.ErrUnauthorized, "%s is not an admin", sender.Address())
	}

	members := make([]almoner.Address, 0, len(msg.Admins))
	for _, identity := range msg.Admins {
		addr, err := h.valid(identity)
		if err != nil {
			return nil, nil, errors.Wrapf(errors.ErrInput, "identity %q: %s", identity, err)
		}
		members = append(members, addr)
	}
	return roster, members, nil
}

type leaveHandler struct {
	auth x.Authenticator
}

var _ almoner.Handler = (*leaveHandler)(nil)

func (h *leaveHandler) Check(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx) (*almoner.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return almoner.NewCheck(leaveCost, ""), nil
}

func (h *leaveHandler) Deliver(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx) (*almoner.DeliverResult, error) {
	roster, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// Giving up all seats is allowed even for the last member, and
	// leaving without holding a seat is a successful noop.
	kept := make([]almoner.Address, 0, len(roster))
	for _, a := range roster {
		if !a.Equals(sender) {
			kept = append(kept, a)
		}
	}
	if err := saveRoster(db, kept); err != nil {
		return nil, err
	}

	tags := []cmn.KVPair{
		almoner.Tag("action", "leave"),
		almoner.Tag("removed_count", strconv.Itoa(len(roster)-len(kept))),
	}
	return &almoner.DeliverResult{Tags: tags}, nil
}

func (h *leaveHandler) validate(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx) ([]almoner.Address, almoner.Address, error) {
	var msg LeaveMsg
	if err := almoner.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, nil, err
	}

	roster, err := loadRoster(db)
	if err != nil {
		return nil, nil, err
	}

	sender := x.MainSigner(ctx, h.auth)
	if sender == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return roster, sender.Address(), nil
}

type donateHandler struct {
	ctrl CashController
}

var _ almoner.Handler = (*donateHandler)(nil)

func (h *donateHandler) Check(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx) (*almoner.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return almoner.NewCheck(donateCost, ""), nil
}

func (h *donateHandler) Deliver(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx) (*almoner.DeliverResult, error) {
	payment, roster, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// Each seat is paid its share, so an address holding several seats
	// is paid several times. The division remainder stays on the
	// package account.
	share, _, err := payment.Divide(int64(len(roster)))
	if err != nil {
		return nil, err
	}
	if !share.IsZero() {
		src := PackageAccount()
		for _, seat := range roster {
			if err := h.ctrl.MoveCoins(db, src, seat, share); err != nil {
				return nil, errors.Wrap(err, "cannot pay out share")
			}
		}
	}

	tags := []cmn.KVPair{
		almoner.Tag("action", "donate"),
		almoner.Tag("amount", strconv.FormatInt(payment.Amount, 10)),
		almoner.Tag("per_admin", strconv.FormatInt(share.Amount, 10)),
	}
	return &almoner.DeliverResult{Tags: tags}, nil
}

func (h *donateHandler) validate(ctx almoner.Context, db almoner.KVStore, tx almoner.Tx) (coin.Coin, []almoner.Address, error) {
	var msg DonateMsg
	if err := almoner.LoadMsg(tx, &msg); err != nil {
		return coin.Coin{}, nil, err
	}
	if err := msg.Validate(); err != nil {
		return coin.Coin{}, nil, err
	}

	denom, err := loadDenom(db)
	if err != nil {
		return coin.Coin{}, nil, err
	}
	payment, ok := almoner.GetPayment(ctx)
	if !ok || payment.Ticker != denom || !payment.IsPositive() {
		return coin.Coin{}, nil, errors.Wrapf(ErrPaymentRequired, "donation must carry %s", denom)
	}

	roster, err := loadRoster(db)
	if err != nil {
		return coin.Coin{}, nil, err
	}
	if len(roster) == 0 {
		return coin.Coin{}, nil, errors.Wrap(ErrNoRecipients, "roster is empty")
	}
	return payment, roster, nil
}
