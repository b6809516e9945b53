package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeCount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		def     int
		limit   int
		want    int
		wantErr bool
		errMsg  string
	}{
		// Valid cases
		{"empty uses default", "", 1, 100, 1, false, ""},
		{"whitespace uses default", "  ", 21, 100, 21, false, ""},
		{"zero", "0", 1, 100, 0, false, ""},
		{"plain", "42", 1, 100, 42, false, ""},
		{"at limit", "100", 1, 100, 100, false, ""},
		{"no limit", "5000000", 1, 0, 5000000, false, ""},
		{"trimmed", " 7 ", 1, 100, 7, false, ""},

		// Invalid
		{"not a number", "ten", 1, 100, 0, true, "must be an integer"},
		{"float", "1.5", 1, 100, 0, true, "must be an integer"},
		{"negative", "-1", 1, 100, 0, true, "must not be negative"},
		{"over limit", "101", 1, 100, 0, true, "must be at most 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeCount("n", tt.input, tt.def, tt.limit)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Contains(t, err.Error(), "n ")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
