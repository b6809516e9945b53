// Package validate sanitizes and validates user-supplied parameters.
package validate

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ParseNode parses a 6-byte version 1 node written as 12 hex digits,
// optionally separated by ':' or '-' (e.g. "01:02:03:04:05:06").
func ParseNode(fieldName, value string) ([6]byte, error) {
	var node [6]byte
	digits := strings.NewReplacer(":", "", "-", "").Replace(strings.TrimSpace(value))
	if len(digits) != 12 {
		return node, fmt.Errorf("%s must be 12 hex digits", fieldName)
	}
	if _, err := hex.Decode(node[:], []byte(digits)); err != nil {
		return node, fmt.Errorf("%s must contain only hex digits", fieldName)
	}
	return node, nil
}
