// Package message renders the outbound notification text and the
// display formats shared by the UI.
package message

import "strings"

// Placeholder tokens recognized in a message template.
const (
	TokenBusiness   = "{업체명}"
	TokenCustomer   = "{고객명}"
	TokenPlayTime   = "{플레이시간}"
	TokenCumulative = "{누적시간}"
	TokenRemaining  = "{남은시간}"
)

// Render substitutes the five placeholder tokens into tpl. Substitution
// is literal find-and-replace, applied in the fixed order below with no
// escaping: a value that itself contains a later token will have that
// token expanded too. That order dependence is the historical contract
// of the template format and is kept as-is.
func Render(tpl, businessName, customerName string, playHours, cumulativeHours, remainingHours float64) string {
	out := tpl
	out = strings.ReplaceAll(out, TokenBusiness, businessName)
	out = strings.ReplaceAll(out, TokenCustomer, customerName)
	out = strings.ReplaceAll(out, TokenPlayTime, FormatHours(playHours))
	out = strings.ReplaceAll(out, TokenCumulative, FormatHours(cumulativeHours))
	out = strings.ReplaceAll(out, TokenRemaining, FormatHours(remainingHours))
	return out
}
