package puzzle

import "time"

const dateKeyLayout = "2006-01-02"

// Location is the bot's home timezone (UTC+5:30). Date keys are always
// computed relative to this offset so the "day" rolls over at IST midnight.
var Location = time.FixedZone("IST", 5*3600+1800)

// Anchor pair for the puzzle-number-to-date mapping: Wordle #1 was the
// puzzle of 2021-06-20. The anchor already encodes the IST day boundary, so
// the mapping itself runs in UTC with no further shifting. Changing either
// constant re-dates every stored score; treat as a breaking migration.
const anchorNumber = 1

var anchorDate = time.Date(2021, time.June, 20, 0, 0, 0, 0, time.UTC)

// DateKey truncates an instant to a calendar date key in IST.
func DateKey(t time.Time) string {
	return t.In(Location).Format(dateKeyLayout)
}

// TodayKey returns today's date key in IST.
func TodayKey() string {
	return DateKey(time.Now())
}

// YesterdayKey returns yesterday's date key in IST.
func YesterdayKey() string {
	return DateKey(time.Now().Add(-24 * time.Hour))
}

// NumberToDate maps a puzzle number to its calendar date. The mapping is
// linear, strictly increasing and injective over integer inputs.
func NumberToDate(n int) time.Time {
	return anchorDate.AddDate(0, 0, n-anchorNumber)
}

// NumberToKey maps a puzzle number to its date key.
func NumberToKey(n int) string {
	return NumberToDate(n).Format(dateKeyLayout)
}
