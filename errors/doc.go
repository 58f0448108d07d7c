/*
Package errors implements custom error interfaces for the whole
repository.

Error declarations should be generic and cover broad range of cases.
Each returned error instance can wrap a generic error declaration to
provide more details. Errors are categorized by their root declaration,
which also carries a unique response code. Use the Is method of a root
error to test if an error belongs to its category, regardless of how
many times it was wrapped.
*/
package errors
