// Package alerts evaluates standing price alerts against live quotes on a
// schedule restricted to exchange trading hours.
package alerts

import (
	"fmt"
	"time"
	_ "time/tzdata" // Asia/Kolkata must resolve on hosts without zoneinfo
)

// MarketHours is the window during which alert cycles may run. Open and
// Close are offsets from local midnight in Location; both ends are inclusive
// at minute resolution.
type MarketHours struct {
	Location     *time.Location
	Open         time.Duration
	Close        time.Duration
	WeekdaysOnly bool
}

// NewMarketHours builds a gate for the named timezone.
func NewMarketHours(timezone string, openAt, closeAt time.Duration, weekdaysOnly bool) (MarketHours, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return MarketHours{}, fmt.Errorf("loading market timezone %q: %w", timezone, err)
	}
	if closeAt < openAt {
		return MarketHours{}, fmt.Errorf("market close %v is before open %v", closeAt, openAt)
	}
	return MarketHours{Location: loc, Open: openAt, Close: closeAt, WeekdaysOnly: weekdaysOnly}, nil
}

// DefaultMarketHours is the NSE/BSE session, 09:15-15:30 IST, checked every day of the week.
func DefaultMarketHours() MarketHours {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = time.FixedZone("IST", 5*60*60+30*60)
	}
	return MarketHours{
		Location:     loc,
		Open:         9*time.Hour + 15*time.Minute,
		Close:        15*time.Hour + 30*time.Minute,
		WeekdaysOnly: false,
	}
}

// IsOpen reports whether t falls inside the trading window.
func (m MarketHours) IsOpen(t time.Time) bool {
	loc := m.Location
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)

	if m.WeekdaysOnly {
		switch local.Weekday() {
		case time.Saturday, time.Sunday:
			return false
		}
	}

	clock := time.Duration(local.Hour())*time.Hour + time.Duration(local.Minute())*time.Minute
	return clock >= m.Open && clock <= m.Close
}
