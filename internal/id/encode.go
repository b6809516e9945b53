package id

import "encoding/base64"

// Truncation lengths of the two short id flavors. Both keep the full 48-bit
// timestamp of a version 7 ID.
const (
	// ShortID12Bytes keeps 72 bits: 48 timestamp bits, the 4 version bits,
	// the 2 variant bits and 18 random bits.
	ShortID12Bytes = 9
	// ShortID16Bytes keeps 96 bits: 48 timestamp bits, the 4 version bits,
	// the 2 variant bits and 42 random bits.
	ShortID16Bytes = 12
)

// EncodePrefix encodes the first n bytes of i as unpadded URL-safe base64.
// n is clamped to [0, 16].
func EncodePrefix(i ID, n int) string {
	n = min(max(n, 0), Size)
	return base64.RawURLEncoding.EncodeToString(i[:n])
}

// ShortID12 returns the 12-character short id: the first 9 bytes (72 bits)
// of i in unpadded URL-safe base64.
func ShortID12(i ID) string { return EncodePrefix(i, ShortID12Bytes) }

// ShortID16 returns the 16-character short id: the first 12 bytes (96 bits)
// of i in unpadded URL-safe base64.
func ShortID16(i ID) string { return EncodePrefix(i, ShortID16Bytes) }

// Base64 returns the standard padded base64 of all 16 bytes (24 characters).
func Base64(i ID) string { return base64.StdEncoding.EncodeToString(i[:]) }

// ShortID12 is the method form of the package-level ShortID12.
func (i ID) ShortID12() string { return ShortID12(i) }

// ShortID16 is the method form of the package-level ShortID16.
func (i ID) ShortID16() string { return ShortID16(i) }

// Base64 is the method form of the package-level Base64.
func (i ID) Base64() string { return Base64(i) }
