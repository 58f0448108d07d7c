/*
Package x contains some standard extension points and shared helpers for
extensions. The main items at the moment are the Authenticator helpers,
used by handlers to learn who authorized a transaction.

The extensions in subpackages contain the actual business logic.
*/
package x
