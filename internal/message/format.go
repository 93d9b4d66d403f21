package message

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	xmessage "golang.org/x/text/message"
)

var printer = xmessage.NewPrinter(language.Korean)

// FormatHours renders a fractional hour count as "H시간 M분", dropping
// the minutes part when it is zero. Minutes are rounded to the nearest
// whole minute; a value that rounds to 60 carries into the hour.
func FormatHours(hours float64) string {
	h := int(hours)
	m := int(math.Round((hours - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}
	if m > 0 {
		return fmt.Sprintf("%d시간 %d분", h, m)
	}
	return fmt.Sprintf("%d시간", h)
}

// FormatNumber renders n with thousands separators and no decimals,
// for payout amounts ("12,345").
func FormatNumber(n float64) string {
	return printer.Sprintf("%d", int64(math.Round(n)))
}
