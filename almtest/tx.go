package almtest

import (
	"github.com/iov-one/almoner"
	"github.com/iov-one/almoner/errors"
)

// Tx is a transaction double carrying a single message.
type Tx struct {
	// Msg is returned by GetMsg.
	Msg almoner.Msg
	// Err if set is returned by GetMsg and both serialization methods.
	Err error
}

var _ almoner.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (almoner.Msg, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg, nil
}

func (tx *Tx) Marshal() ([]byte, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	if tx.Msg == nil {
		return nil, nil
	}
	return tx.Msg.Marshal()
}

func (tx *Tx) Unmarshal(b []byte) error {
	if tx.Err != nil {
		return tx.Err
	}
	return errors.Wrap(errors.ErrType, "almtest tx cannot unmarshal")
}

// Msg is a message double with a fixed path and payload.
type Msg struct {
	// RoutePath is returned by Path.
	RoutePath string
	// Serialized is returned by Marshal.
	Serialized []byte
	// Err if set is returned by both serialization methods.
	Err error
}

var _ almoner.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Marshal() ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Serialized, nil
}

func (m *Msg) Unmarshal(b []byte) error {
	if m.Err != nil {
		return m.Err
	}
	m.Serialized = b
	return nil
}
