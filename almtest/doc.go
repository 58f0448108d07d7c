/*
Package almtest provides lightweight test doubles for the core almoner
interfaces. Use these in extension tests instead of building one-off
mocks in every package.
*/
package almtest
