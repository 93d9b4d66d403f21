// Package types defines the shared records for the alimtalk manager.
// JSON tags match the on-disk file format, so data files written by
// earlier versions of the tool load unchanged.
package types

// Customer is one customer with a purchased time balance.
type Customer struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	GameName   string  `json:"game_name"`
	TotalHours float64 `json:"total_hours"`
	UsedHours  float64 `json:"used_hours"`
	Memo       string  `json:"memo"`
	CreatedAt  string  `json:"created_at"`
}

// Remaining is the derived balance. Never stored; may be negative.
func (c Customer) Remaining() float64 {
	return c.TotalHours - c.UsedHours
}

// UsedPercent returns how much of the purchased balance is consumed,
// capped at 100 for gauge rendering.
func (c Customer) UsedPercent() float64 {
	total := c.TotalHours
	if total < 1 {
		total = 1
	}
	pct := c.UsedHours / total * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Badge classifies a customer's remaining balance for display.
type Badge int

const (
	BadgeOK      Badge = iota // plenty of hours left
	BadgeCaution              // remaining <= 10h
	BadgeUrgent               // remaining <= 5h
)

// Badge returns the balance classification for this customer.
func (c Customer) Badge() Badge {
	switch remaining := c.Remaining(); {
	case remaining <= 5:
		return BadgeUrgent
	case remaining <= 10:
		return BadgeCaution
	default:
		return BadgeOK
	}
}

// Driver is a staff member whose hourly rate determines the payout per
// deduction.
type Driver struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourly_rate"`
}

// DeductionRecord is one logged deduction event. CustomerName,
// DriverName and HourlyRate are snapshots taken at creation time and
// intentionally not kept in sync with later edits to their sources.
type DeductionRecord struct {
	ID           string  `json:"id"`
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	DriverName   string  `json:"driver_name"`
	PlayHours    float64 `json:"play_hours"`
	HourlyRate   float64 `json:"hourly_rate"`
	TotalPay     int     `json:"total_pay"`
	Date         string  `json:"date"`
	MessageSent  bool    `json:"message_sent"`
	CreatedAt    string  `json:"created_at"`
}

// Settings is the singleton configuration record.
type Settings struct {
	BusinessName    string `json:"business_name"`
	MessageTemplate string `json:"message_template"`
}
