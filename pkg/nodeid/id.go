// Package nodeid provides the unique identifiers that name classes.
//
// An [ID] is a 128-bit random (version 4) UUID. Inside a saved project it is
// written as the standard base64 encoding of its 16 bytes in RFC 4122 byte
// order, which yields a fixed 24-character printable string. The all-zero
// [Zero] value is reserved as the "no class" sentinel, used for example by
// function nodes that do not belong to any class.
package nodeid

import (
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

// ID uniquely identifies a class for the lifetime of a project.
// IDs are comparable and can be used as map keys.
type ID uuid.UUID

// Zero is the sentinel ID meaning "no class".
var Zero ID

// EncodedLen is the length of the base64 form returned by [ID.Base64].
const EncodedLen = 24

// New returns a fresh random ID.
func New() ID {
	return ID(uuid.New())
}

// Parse parses the canonical textual UUID form
// (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx).
func Parse(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Zero, fmt.Errorf("parse id %q: %w", s, err)
	}
	return ID(u), nil
}

// FromBase64 decodes the form produced by [ID.Base64].
func FromBase64(s string) (ID, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Zero, fmt.Errorf("decode id %q: %w", s, err)
	}
	u, err := uuid.FromBytes(b)
	if err != nil {
		return Zero, fmt.Errorf("decode id %q: %w", s, err)
	}
	return ID(u), nil
}

// IsZero reports whether id is the [Zero] sentinel.
func (id ID) IsZero() bool { return id == Zero }

// Base64 returns the fixed-length printable encoding used in saved projects.
func (id ID) Base64() string {
	return base64.StdEncoding.EncodeToString(id[:])
}

// String returns the canonical UUID form.
func (id ID) String() string {
	return uuid.UUID(id).String()
}
