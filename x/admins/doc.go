/*
Package admins implements a self-governed member roster with donation
splitting.

The roster and the donation currency are configured at genesis. Any
current member can extend the roster, any member can leave it, and
anyone can donate funds in the configured currency. A donation is split
equally among all roster seats, with the remainder staying on the
package account until the next distribution.

The roster is an ordered list of seats, not a set. Adding an address
that is already present gives it another seat and with it another share
of every donation.
*/
package admins
