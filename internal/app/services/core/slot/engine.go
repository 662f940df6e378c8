package slot

import (
	"fmt"
	"strconv"
	"strings"
	"trimline-service/internal/pkg/exceptions"
)

// Grid returns the slot labels for a day, in chronological order.
func Grid() []string {
	var labels []string
	for m := OpenMinutes; m <= CloseMinutes; m += StepMinutes {
		labels = append(labels, FormatSlotLabel(m))
	}
	return labels
}

// ParseSlotLabel converts a 12-hour clock label such as "9:00 AM" or "2:30 PM"
// to minutes since midnight. Malformed labels are a hard error; the caller
// must never treat an unparseable label as midnight.
func ParseSlotLabel(label string) (int, error) {
	clockPart, period, ok := strings.Cut(label, " ")
	if !ok {
		return 0, exceptions.ErrSlotInvalidTimeFormat(fmt.Errorf("missing AM/PM in '%s'", label))
	}
	if period != "AM" && period != "PM" {
		return 0, exceptions.ErrSlotInvalidTimeFormat(fmt.Errorf("invalid period '%s'", period))
	}

	hourPart, minutePart, ok := strings.Cut(clockPart, ":")
	if !ok {
		return 0, exceptions.ErrSlotInvalidTimeFormat(fmt.Errorf("missing minutes in '%s'", label))
	}
	if len(minutePart) != 2 {
		return 0, exceptions.ErrSlotInvalidTimeFormat(fmt.Errorf("minutes must be two digits in '%s'", label))
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 1 || hour > 12 {
		return 0, exceptions.ErrSlotInvalidTimeFormat(fmt.Errorf("invalid hour '%s'", hourPart))
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil || minute < 0 || minute > 59 {
		return 0, exceptions.ErrSlotInvalidTimeFormat(fmt.Errorf("invalid minute '%s'", minutePart))
	}

	// 12 AM is midnight and 12 PM is noon.
	if hour == 12 {
		hour = 0
	}
	minutes := hour*60 + minute
	if period == "PM" {
		minutes += 12 * 60
	}
	return minutes, nil
}

// FormatSlotLabel renders minutes since midnight as a 12-hour clock label
// with no leading zero on the hour, e.g. 540 -> "9:00 AM".
func FormatSlotLabel(minutes int) string {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	hour := minutes / 60
	minute := minutes % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minute, period)
}

// ComputeBlockedSlots returns the set of grid labels on which a new booking of
// candidateDurationMinutes cannot start, given the day's confirmed bookings.
// A slot is blocked when the candidate interval would overlap a booked one:
//
//	slotStart < bookedEnd && slotStart+candidateDuration > bookedStart
//
// Intervals are half-open, so a candidate that starts exactly where a booking
// ends (or ends exactly where one starts) is not blocked.
func ComputeBlockedSlots(booked []BookedInterval, candidateDurationMinutes int) (map[string]bool, error) {
	if candidateDurationMinutes <= 0 {
		return nil, exceptions.ErrSlotInvalidDuration(fmt.Errorf("candidate duration %d", candidateDurationMinutes))
	}

	blocked := make(map[string]bool)
	for slotStart := OpenMinutes; slotStart <= CloseMinutes; slotStart += StepMinutes {
		for _, b := range booked {
			if b.DurationMinutes <= 0 {
				continue
			}
			if slotStart < b.EndMinutes() && slotStart+candidateDurationMinutes > b.StartMinutes {
				blocked[FormatSlotLabel(slotStart)] = true
				break
			}
		}
	}
	return blocked, nil
}

// ValidateSelection checks that label is a well-formed grid slot on which a
// booking of candidateDurationMinutes can still start. It returns the slot's
// minutes since midnight.
func ValidateSelection(label string, booked []BookedInterval, candidateDurationMinutes int) (int, error) {
	startMinutes, err := ParseSlotLabel(label)
	if err != nil {
		return 0, err
	}

	if startMinutes < OpenMinutes || startMinutes > CloseMinutes || startMinutes%StepMinutes != 0 {
		return 0, exceptions.ErrSlotNotOnGrid(fmt.Errorf("label '%s' (%d minutes)", label, startMinutes))
	}

	blocked, err := ComputeBlockedSlots(booked, candidateDurationMinutes)
	if err != nil {
		return 0, err
	}
	// Look up by the canonical label so variants like "09:00 AM" still match.
	if blocked[FormatSlotLabel(startMinutes)] {
		return 0, exceptions.ErrSlotNoLongerAvailable(fmt.Errorf("label '%s'", label))
	}
	return startMinutes, nil
}
