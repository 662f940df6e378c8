package slot

// Working hours of the shop, in minutes since midnight. Slots fall on every
// half-hour mark from opening through closing, closing mark included.
const (
	OpenMinutes   = 9 * 60
	CloseMinutes  = 18 * 60
	StepMinutes   = 30
	MinutesPerDay = 24 * 60
)

// BookedInterval is the occupied window of one confirmed booking.
// The interval is half-open: [StartMinutes, StartMinutes+DurationMinutes).
type BookedInterval struct {
	StartMinutes    int
	DurationMinutes int
}

// EndMinutes is the exclusive end of the interval.
func (b BookedInterval) EndMinutes() int {
	return b.StartMinutes + b.DurationMinutes
}
