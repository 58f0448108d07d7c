package admins

import (
	"encoding/json"

	"github.com/iov-one/almoner"
	"github.com/iov-one/almoner/errors"
)

const (
	pathAddMembers = "admins/add_members"
	pathLeave      = "admins/leave"
	pathDonate     = "admins/donate"
)

var _ almoner.Msg = (*AddMembersMsg)(nil)

// AddMembersMsg requests extending the roster with the given members.
// Each entry is a caller-provided identity that must pass identity
// validation before it becomes an address.
type AddMembersMsg struct {
	Admins []string `json:"admins"`
}

// Path returns the routing path for this message.
func (AddMembersMsg) Path() string {
	return pathAddMembers
}

// Validate ensures the message can be processed. Identity resolution is
// left to the handler as it requires host capabilities.
func (m *AddMembersMsg) Validate() error {
	if len(m.Admins) == 0 {
		return errors.Wrap(errors.ErrEmpty, "admins")
	}
	for _, a := range m.Admins {
		if a == "" {
			return errors.Wrap(errors.ErrEmpty, "admin identity")
		}
	}
	return nil
}

func (m *AddMembersMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *AddMembersMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

var _ almoner.Msg = (*LeaveMsg)(nil)

// LeaveMsg requests the removal of all roster seats held by the signer.
type LeaveMsg struct{}

// Path returns the routing path for this message.
func (LeaveMsg) Path() string {
	return pathLeave
}

// Validate ensures the message can be processed.
func (m *LeaveMsg) Validate() error {
	return nil
}

func (m *LeaveMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *LeaveMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

var _ almoner.Msg = (*DonateMsg)(nil)

// DonateMsg requests splitting the payment attached to the transaction
// among all roster seats.
type DonateMsg struct{}

// Path returns the routing path for this message.
func (DonateMsg) Path() string {
	return pathDonate
}

// Validate ensures the message can be processed. The payment itself is
// carried outside the message and checked by the handler.
func (m *DonateMsg) Validate() error {
	return nil
}

func (m *DonateMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *DonateMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}
