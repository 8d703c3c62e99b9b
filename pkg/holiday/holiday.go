// Package holiday answers whether a calendar date is a Czech public holiday.
package holiday

import "time"

type monthDay struct {
	month time.Month
	day   int
}

// Fixed statutory holidays, checked by month and day only.
var fixedHolidays = map[monthDay]string{
	{time.January, 1}:    "Nový rok / Den obnovy samostatného českého státu",
	{time.May, 1}:        "Svátek práce",
	{time.May, 8}:        "Den vítězství",
	{time.July, 5}:       "Den slovanských věrozvěstů Cyrila a Metoděje",
	{time.July, 6}:       "Den upálení mistra Jana Husa",
	{time.September, 28}: "Den české státnosti",
	{time.October, 28}:   "Den vzniku samostatného československého státu",
	{time.November, 17}:  "Den boje za svobodu a demokracii",
	{time.December, 24}:  "Štědrý den",
	{time.December, 25}:  "1. svátek vánoční",
	{time.December, 26}:  "2. svátek vánoční",
}

// EasterSunday computes Easter Sunday for the given year using the
// Meeus/Jones/Butcher algorithm. Integer arithmetic only.
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Name returns the holiday name for the given date, or ok=false when the
// date is an ordinary day.
func Name(date time.Time) (string, bool) {
	if name, ok := fixedHolidays[monthDay{date.Month(), date.Day()}]; ok {
		return name, true
	}

	easter := EasterSunday(date.Year())
	goodFriday := easter.AddDate(0, 0, -2)
	easterMonday := easter.AddDate(0, 0, 1)

	if sameDay(date, goodFriday) {
		return "Velký pátek", true
	}
	if sameDay(date, easterMonday) {
		return "Velikonoční pondělí", true
	}

	return "", false
}

// IsHoliday reports whether the date is a public holiday.
func IsHoliday(date time.Time) bool {
	_, ok := Name(date)
	return ok
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
