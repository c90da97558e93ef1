package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a query by id matches no rows.
var ErrNotFound = errors.New("record not found")

// cleanText converts a raw TEXT column to a string, dropping byte sequences
// that are not valid UTF-8. The Northwind database ships with a handful of
// legacy-encoded bytes, so undecodable input is ignored rather than rejected.
func cleanText(b []byte) string {
	return strings.ToValidUTF8(string(b), "")
}

// cleanTextPtr is cleanText for nullable columns: a NULL scans as a nil
// byte slice and stays nil on the wire.
func cleanTextPtr(b []byte) *string {
	if b == nil {
		return nil
	}
	s := cleanText(b)
	return &s
}
