// Package errors provides coded errors for gulps.
//
// Every failure that leaves a package carries an ErrorCode so callers and
// tests can branch on the category instead of matching message text.
// errors.Is compares codes, so a sentinel built with New matches any error
// of the same code further down a wrap chain.
package errors
