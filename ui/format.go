package ui

import (
	"fmt"
)

// digitsShown is the length above which FormatResult appends a digit count.
const digitsShown = 30

// FormatResult renders "n! = digits", noting the length of long results.
func FormatResult(n int64, digits string) string {
	line := fmt.Sprintf("%s = %s", BrightCyan(fmt.Sprintf("%d!", n)), BrightWhite(digits))
	if len(digits) > digitsShown {
		line += " " + Dim(fmt.Sprintf("(%d digits)", len(digits)))
	}
	return line
}
