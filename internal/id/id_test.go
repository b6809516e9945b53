package id

import (
	"encoding/json"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTrip(t *testing.T) {
	const canonical = "0190a3b4-c5d6-7e8f-9a0b-1c2d3e4f5a6b"

	tests := []struct {
		name  string
		input string
	}{
		{"canonical", canonical},
		{"no dashes", "0190a3b4c5d67e8f9a0b1c2d3e4f5a6b"},
		{"upper case", strings.ToUpper(canonical)},
		{"odd dash positions", "0-190a3b4c5d67e8f9a0b1c2d3e4f5a6b-"},
		{"many dashes", "01-90-a3-b4-c5-d6-7e-8f-9a-0b-1c-2d-3e-4f-5a-6b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, canonical, got.String())
			assert.Len(t, got.Hex(), 36)
		})
	}
}

func TestParse_InvalidFormat(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{"empty", "", "expected 32 hex digits"},
		{"31 digits", strings.Repeat("a", 31), "expected 32 hex digits"},
		{"33 digits", strings.Repeat("a", 33), "expected 32 hex digits"},
		{"non hex", "0190a3b4c5d67e8f9a0b1c2d3e4f5a6g", "not hexadecimal"},
		{"space", "0190a3b4c5d67e8f9a0b1c2d3e4f5a6 ", "not hexadecimal"},
		{"dashes only", "------------------------------------", "expected 32 hex digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidFormat))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestFromBytes(t *testing.T) {
	b := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	got, err := FromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, b, got.Bytes())
	assert.Equal(t, "00010203-0405-0607-0809-0a0b0c0d0e0f", got.String())

	// The ID does not alias the caller's buffer.
	b[0] = 0xff
	assert.Equal(t, byte(0), got[0])

	// Nor does Bytes alias the ID.
	out := got.Bytes()
	out[1] = 0xff
	assert.Equal(t, byte(1), got[1])
}

func TestFromBytes_WrongLength(t *testing.T) {
	for _, n := range []int{0, 15, 17, 32} {
		_, err := FromBytes(make([]byte, n))
		require.Error(t, err, "length %d", n)
		assert.ErrorIs(t, err, ErrInvalidFormat)
		assert.Contains(t, err.Error(), "expected 16 bytes")
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("nope") })
	assert.NotPanics(t, func() { MustParse("00000000000000000000000000000000") })
}

func TestVariant(t *testing.T) {
	tests := []struct {
		b    byte
		want Variant
	}{
		{0x00, VariantNCS},
		{0x3f, VariantNCS},
		{0x40, VariantNCS},
		{0x7f, VariantNCS},
		{0x80, VariantRFC4122},
		{0xbf, VariantRFC4122},
		{0xc0, VariantMicrosoft},
		{0xff, VariantMicrosoft},
	}

	for _, tt := range tests {
		var i ID
		i[8] = tt.b
		assert.Equal(t, tt.want, i.Variant(), "byte 0x%02x", tt.b)
	}

	assert.Equal(t, "specified in RFC 4122", VariantRFC4122.String())
	assert.Equal(t, "reserved for NCS compatibility", VariantNCS.String())
	assert.Equal(t, "reserved for Microsoft compatibility", VariantMicrosoft.String())
	assert.Equal(t, "unknown", Variant(42).String())
}

func TestInt(t *testing.T) {
	one := MustParse("00000000-0000-0000-0000-000000000001")
	assert.Equal(t, big.NewInt(1), one.Int())

	maxVal := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	all := MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")
	assert.Equal(t, 0, maxVal.Cmp(all.Int()))

	hi := MustParse("01000000-0000-0000-0000-000000000000")
	assert.Equal(t, 0, new(big.Int).Lsh(big.NewInt(1), 120).Cmp(hi.Int()))
}

func TestCompare(t *testing.T) {
	a := MustParse("00000000-0000-0000-0000-000000000001")
	b := MustParse("00000000-0000-0000-0000-000000000002")
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestTime_NotTimeBased(t *testing.T) {
	i := MustParse("00000000-0000-4000-8000-000000000000")
	_, ok := i.Time()
	assert.False(t, ok)
	assert.Nil(t, i.Node())
	assert.Equal(t, -1, i.ClockSequence())
}

func TestTextMarshaling(t *testing.T) {
	type wrapper struct {
		ID ID `json:"id"`
	}

	in := wrapper{ID: MustParse("0190a3b4-c5d6-7e8f-9a0b-1c2d3e4f5a6b")}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"0190a3b4-c5d6-7e8f-9a0b-1c2d3e4f5a6b"}`, string(data))

	var out wrapper
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	err = json.Unmarshal([]byte(`{"id":"not-an-id"}`), &out)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
