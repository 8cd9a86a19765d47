package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mouss-42/ReactSituPro-main/pkg/checkout/domain/service"
)

func TestFormatCardNumber(t *testing.T) {
	cases := map[string]string{
		"4111111111111111":         "4111 1111 1111 1111",
		"4111 1111 1111 1111":      "4111 1111 1111 1111",
		"4111-1111-1111-1111-9999": "4111 1111 1111 1111",
		"41111":                    "4111 1",
		"41":                       "41",
		"abc":                      "",
		"":                         "",
	}
	for input, want := range cases {
		assert.Equal(t, want, service.FormatCardNumber(input), "input %q", input)
	}
}

func TestFormatExpiry(t *testing.T) {
	cases := map[string]string{
		"1225":    "12/25",
		"12/25":   "12/25",
		"12/2599": "12/25",
		"123":     "12/3",
		"12":      "12",
		"1":       "1",
		"ab":      "",
	}
	for input, want := range cases {
		assert.Equal(t, want, service.FormatExpiry(input), "input %q", input)
	}
}
