package currency

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Format renders an amount as "Rs. 12,345.50" for WhatsApp messages and
// printed reports. Uses plain comma grouping, not the lakh/crore style,
// to match what the shop's old invoices printed.
func Format(amount decimal.Decimal) string {
	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if paise < 0 {
		paise = -paise
	}
	return fmt.Sprintf("Rs. %s.%02d", addCommasToInteger(rupees), paise)
}

func addCommasToInteger(value int64) string {
	negative := value < 0
	if negative {
		value = -value
	}
	strValue := strconv.FormatInt(value, 10)
	var out string
	for i, digit := range strValue {
		if i > 0 && (len(strValue)-i)%3 == 0 {
			out += ","
		}
		out += string(digit)
	}
	if negative {
		return "-" + out
	}
	return out
}
