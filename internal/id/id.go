// Package id builds 128-bit identifiers (time-ordered, time-and-node and
// random), their shortened string forms and alphabet based nano ids.
package id

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidFormat is returned when text or bytes do not decode to exactly
// 16 bytes.
var ErrInvalidFormat = errors.New("invalid identifier format")

// Size is the length of an ID in bytes.
const Size = 16

// ID is an immutable 128-bit identifier. Two IDs are equal iff their bytes are.
type ID [Size]byte

// Nil is the all-zero ID.
var Nil ID

// Parse decodes 32 hex digits into an ID. Dashes may appear anywhere and are
// stripped before decoding.
func Parse(s string) (ID, error) {
	hex := strings.ReplaceAll(s, "-", "")
	if len(hex) != 2*Size {
		return Nil, fmt.Errorf("%w: expected 32 hex digits, got %d", ErrInvalidFormat, len(hex))
	}
	u, err := uuid.Parse(hex)
	if err != nil {
		return Nil, fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidFormat, s)
	}
	return ID(u), nil
}

// FromBytes copies b into an ID. b must be exactly 16 bytes long.
func FromBytes(b []byte) (ID, error) {
	if len(b) != Size {
		return Nil, fmt.Errorf("%w: expected 16 bytes, got %d", ErrInvalidFormat, len(b))
	}
	u, err := uuid.FromBytes(b)
	if err != nil {
		return Nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return ID(u), nil
}

// MustParse is like Parse but panics on error. Intended for constants in tests
// and initialisers.
func MustParse(s string) ID {
	i, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("id: MustParse(%q): %v", s, err))
	}
	return i
}

// String returns the canonical dashed lower-case hex form
// (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx).
func (i ID) String() string { return uuid.UUID(i).String() }

// Hex is an alias for String.
func (i ID) Hex() string { return i.String() }

// Bytes returns a copy of the 16 raw bytes.
func (i ID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, i[:])
	return b
}

// Version returns the 4-bit version tag stored in the high nibble of byte 6.
func (i ID) Version() int { return int(i[6] >> 4) }

// Variant classifies the top two bits of byte 8.
func (i ID) Variant() Variant { return variantOf(i[8]) }

// Int returns the big-endian unsigned integer value of the ID.
func (i ID) Int() *big.Int { return new(big.Int).SetBytes(i[:]) }

// Compare orders IDs byte-wise and returns -1, 0 or 1.
func (i ID) Compare(other ID) int { return bytes.Compare(i[:], other[:]) }

// Time returns the embedded timestamp of a version 1 or version 7 ID.
// The second result is false for other versions.
func (i ID) Time() (time.Time, bool) {
	switch i.Version() {
	case 1:
		sec, nsec := uuid.UUID(i).Time().UnixTime()
		return time.Unix(sec, nsec).UTC(), true
	case 7:
		ms := int64(i[0])<<40 | int64(i[1])<<32 | int64(i[2])<<24 |
			int64(i[3])<<16 | int64(i[4])<<8 | int64(i[5])
		return time.UnixMilli(ms).UTC(), true
	default:
		return time.Time{}, false
	}
}

// Node returns the 6-byte node of a version 1 ID, or nil otherwise.
func (i ID) Node() []byte {
	if i.Version() != 1 {
		return nil
	}
	return uuid.UUID(i).NodeID()
}

// ClockSequence returns the 14-bit clock sequence of a version 1 ID, or -1
// otherwise.
func (i ID) ClockSequence() int {
	if i.Version() != 1 {
		return -1
	}
	return uuid.UUID(i).ClockSequence()
}

// MarshalText implements encoding.TextMarshaler using the dashed hex form.
func (i ID) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts anything Parse
// accepts.
func (i *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
