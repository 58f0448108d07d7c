package admins

import (
	"github.com/iov-one/almoner/errors"
)

var (
	// ErrPaymentRequired is returned when a donation carries no funds,
	// or funds in a currency other than the configured one.
	ErrPaymentRequired = errors.Register(1030, "payment required")

	// ErrNoRecipients is returned when a donation arrives while the
	// roster holds no members.
	ErrNoRecipients = errors.Register(1031, "no recipients")
)
