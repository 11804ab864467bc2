// Package switchback holds the sentinel errors shared by its HTTP helper packages.
//
// Wrap these with fmt.Errorf and the %w verb to add detail;
// match on them with errors.Is to branch on the kind of failure.
package switchback

import "errors"

var (
	ErrBadAny         = errors.New("bad any")
	ErrBadFormat      = errors.New("bad format")
	ErrNotImplemented = errors.New("not implemented")
	ErrNotValid       = errors.New("invalid")
	ErrUnexpected     = errors.New("unexpected")
	ErrUnserializable = errors.New("unserializable value")
)
