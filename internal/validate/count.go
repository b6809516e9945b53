package validate

import (
	"fmt"
	"strconv"
	"strings"
)

// SanitizeCount parses a non-negative integer request parameter.
// An empty value yields def. When limit is positive, values above it are
// rejected.
func SanitizeCount(fieldName, value string, def, limit int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", fieldName)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative", fieldName)
	}
	if limit > 0 && n > limit {
		return 0, fmt.Errorf("%s must be at most %d", fieldName, limit)
	}
	return n, nil
}
