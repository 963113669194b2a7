package xrm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "black", "black"},
		{"newline", `a\nb`, "a\nb"},
		{"backslash", `a\\b`, `a\b`},
		{"escaped space", `\ leading`, " leading"},
		{"octal", `\033[1m`, "\033[1m"},
		{"octal needs three digits", `\12`, "12"},
		{"unknown escape keeps character", `\x\y`, "xy"},
		{"trailing backslash", `abc\`, `abc\`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeValue(tt.input))
		})
	}
}

func TestEncodeValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "black", "black"},
		{"leading space", " hello", `\ hello`},
		{"interior space untouched", "a b", "a b"},
		{"newline", "a\nb", `a\nb`},
		{"backslash", `a\b`, `a\\b`},
		{"only a space", " ", `\ `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeValue(tt.input))
		})
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	values := []string{
		"plain",
		" leading space",
		"embedded\nnewline",
		`back\slash`,
		" ",
		"",
	}
	for _, v := range values {
		assert.Equal(t, v, DecodeValue(EncodeValue(v)), "value %q", v)
	}
}
