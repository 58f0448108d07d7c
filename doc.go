/*
Package almoner defines the common interfaces that tie the repository
together: messages and transactions, handlers, key-value stores with
cache-wrap buffering, query routing, and the context helpers used to
pass call information (caller conditions, attached payment, logger)
into the handlers.

The business logic lives in the x/admins extension. The app package
wires routing and transactional execution on top of these interfaces.
*/
package almoner
