package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapmux/idgen/idgen"
)

func lines(s string) []string {
	return strings.Fields(s)
}

func TestRunGenerate(t *testing.T) {
	tests := []struct {
		kind    string
		args    []string
		count   int
		pattern *regexp.Regexp
	}{
		{"short", []string{"-n", "5"}, 5, regexp.MustCompile(`^[A-Za-z0-9_-]{12}$`)},
		{"short16", nil, 1, regexp.MustCompile(`^[A-Za-z0-9_-]{16}$`)},
		{"uuid1", []string{"-n", "3"}, 3, regexp.MustCompile(`^[0-9a-f-]{24}010203040506$`)},
		{"uuid4", []string{"-n", "300"}, 300, regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4`)},
		{"uuid7", []string{"-n", "2"}, 2, regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7`)},
		{"nanoid", []string{"-n", "4", "-size", "10"}, 4, regexp.MustCompile(`^[A-Za-z0-9_-]{10}$`)},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, runGenerate(tt.kind, tt.args, &out))

			got := lines(out.String())
			require.Len(t, got, tt.count)
			for _, s := range got {
				assert.Regexp(t, tt.pattern, s)
			}
		})
	}
}

func TestRunGenerate_CustomNode(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runGenerate("uuid1", []string{"-node", "aa:bb:cc:dd:ee:ff"}, &out))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out.String()), "aabbccddeeff"))
}

func TestRunGenerate_Errors(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorContains(t, runGenerate("short", []string{"-n", "-1"}, &out), "n must not be negative")
	assert.ErrorContains(t, runGenerate("uuid1", []string{"-node", "zz"}, &out), "node must be 12 hex digits")
	assert.ErrorContains(t, runGenerate("uuid9", nil, &out), "unknown kind")
	assert.Error(t, runGenerate("short", []string{"-bogus"}, &out))
}

func TestRunGenerate_Zero(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runGenerate("nanoid", []string{"-n", "0"}, &out))
	assert.Empty(t, out.String())
}

func TestRunInspect(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runInspect([]string{"0190a3b4c5d67e8f9a0b1c2d3e4f5a6b"}, &out))

	var info idgen.Info
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.Equal(t, "0190a3b4-c5d6-7e8f-9a0b-1c2d3e4f5a6b", info.Hex)
	assert.Equal(t, 7, info.Version)

	err := runInspect([]string{"xyz"}, &out)
	assert.ErrorIs(t, err, idgen.ErrInvalidFormat)

	assert.ErrorContains(t, runInspect(nil, &out), "at least one identifier")
}

func TestFlagOverrides(t *testing.T) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", "", "")
	maxBatch := fs.Int("max-batch", 0, "")
	logLevel := fs.String("log-level", "", "")
	require.NoError(t, fs.Parse([]string{"-addr", ":1", "-max-batch", "9"}))

	got := flagOverrides(fs, map[string]func() any{
		"addr":      func() any { return *addr },
		"max-batch": func() any { return *maxBatch },
		"log-level": func() any { return *logLevel },
	})
	assert.Equal(t, map[string]any{"addr": ":1", "max_batch": 9}, got)
}
