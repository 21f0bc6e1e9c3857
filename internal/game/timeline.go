package game

// Season is one quarter of the 12-month year cycle.
type Season int

const (
	SeasonSpring Season = iota
	SeasonSummer
	SeasonAutumn
	SeasonWinter
)

// String returns the season name.
func (s Season) String() string {
	switch s {
	case SeasonSpring:
		return "spring"
	case SeasonSummer:
		return "summer"
	case SeasonAutumn:
		return "autumn"
	case SeasonWinter:
		return "winter"
	default:
		return "unknown"
	}
}

// seasonOf derives the season for a 1-based absolute month index.
// Months group into 3-month blocks cycling spring -> summer -> autumn -> winter.
func seasonOf(month int) Season {
	return Season(((month - 1) / 3) % 4)
}

// yearOf derives the 1-based year for a 1-based absolute month index.
func yearOf(month int) int {
	return (month-1)/12 + 1
}

// isEventMonth reports whether the month is the third of its season block,
// the slot that hosts a special weather event.
func isEventMonth(month int) bool {
	return (month-1)%3 == 2
}

// isYearlyMonth reports whether the month closes out a full year.
func isYearlyMonth(month int) bool {
	return isEventMonth(month) && month%12 == 0
}
