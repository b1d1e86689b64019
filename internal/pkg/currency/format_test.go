package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "Rs. 0.00"},
		{"5", "Rs. 5.00"},
		{"1234.5", "Rs. 1,234.50"},
		{"1000000", "Rs. 1,000,000.00"},
		{"999.99", "Rs. 999.99"},
		{"-250.75", "Rs. -250.75"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(decimal.RequireFromString(tt.input)))
		})
	}
}
