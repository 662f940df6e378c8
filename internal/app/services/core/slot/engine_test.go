package slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid(t *testing.T) {
	labels := Grid()

	assert.Len(t, labels, 19, "half-hour marks from 9:00 AM through 6:00 PM inclusive")
	assert.Equal(t, "9:00 AM", labels[0])
	assert.Equal(t, "12:00 PM", labels[6])
	assert.Equal(t, "12:30 PM", labels[7])
	assert.Equal(t, "6:00 PM", labels[len(labels)-1])
}

func TestParseSlotLabel(t *testing.T) {
	t.Run("Valid Labels", func(t *testing.T) {
		cases := map[string]int{
			"9:00 AM":  540,
			"9:30 AM":  570,
			"12:00 PM": 720,
			"12:30 PM": 750,
			"1:00 PM":  780,
			"2:30 PM":  870,
			"6:00 PM":  1080,
			"12:00 AM": 0,
			"11:59 PM": 1439,
		}
		for label, expected := range cases {
			minutes, err := ParseSlotLabel(label)
			assert.NoError(t, err, label)
			assert.Equal(t, expected, minutes, label)
		}
	})

	t.Run("Invalid Labels Are Rejected", func(t *testing.T) {
		invalid := []string{
			"",
			"2:00",
			"2:00PM",
			"2:00 pm",
			"2:0 PM",
			"14:00 PM",
			"0:30 AM",
			"2:60 PM",
			"noon",
			"PM 2:00",
		}
		for _, label := range invalid {
			_, err := ParseSlotLabel(label)
			assert.Error(t, err, "label %q must not parse", label)
		}
	})

	t.Run("Round Trip Through Format", func(t *testing.T) {
		for _, label := range Grid() {
			minutes, err := ParseSlotLabel(label)
			assert.NoError(t, err)
			assert.Equal(t, label, FormatSlotLabel(minutes))
		}
	})
}

func TestComputeBlockedSlots(t *testing.T) {
	t.Run("Single Booking Blocks Overlapping Starts", func(t *testing.T) {
		// One confirmed booking at 2:00 PM for 60 minutes.
		booked := []BookedInterval{{StartMinutes: 840, DurationMinutes: 60}}

		blocked, err := ComputeBlockedSlots(booked, 30)
		assert.NoError(t, err)

		assert.True(t, blocked["2:00 PM"])
		assert.True(t, blocked["2:30 PM"])
		// Half-open boundaries: a 30-minute candidate at 1:30 PM ends exactly
		// when the booking starts, and 3:00 PM starts exactly when it ends.
		assert.False(t, blocked["1:30 PM"])
		assert.False(t, blocked["3:00 PM"])
		assert.False(t, blocked["1:00 PM"])
		assert.Equal(t, 2, len(blocked))
	})

	t.Run("Boundary One Minute Past Abutment Blocks", func(t *testing.T) {
		booked := []BookedInterval{{StartMinutes: 840, DurationMinutes: 60}}

		// 31-minute candidate at 1:30 PM ends at 2:01 PM, inside the booking.
		blocked, err := ComputeBlockedSlots(booked, 31)
		assert.NoError(t, err)
		assert.True(t, blocked["1:30 PM"])
	})

	t.Run("Longer Candidate Blocks Earlier Slots", func(t *testing.T) {
		booked := []BookedInterval{{StartMinutes: 840, DurationMinutes: 60}}

		// A 75-minute bundle starting 1:00 PM would run until 2:15 PM.
		blocked, err := ComputeBlockedSlots(booked, 75)
		assert.NoError(t, err)
		assert.True(t, blocked["1:00 PM"])
		assert.True(t, blocked["1:30 PM"])
		assert.True(t, blocked["2:00 PM"])
		assert.True(t, blocked["2:30 PM"])
		assert.False(t, blocked["12:30 PM"], "ends exactly at the booking start")
	})

	t.Run("Candidate Containing A Booking Is Blocked", func(t *testing.T) {
		booked := []BookedInterval{{StartMinutes: 840, DurationMinutes: 30}}

		blocked, err := ComputeBlockedSlots(booked, 120)
		assert.NoError(t, err)
		assert.True(t, blocked["1:30 PM"], "candidate fully contains the booking")
	})

	t.Run("No Bookings Blocks Nothing", func(t *testing.T) {
		blocked, err := ComputeBlockedSlots(nil, 45)
		assert.NoError(t, err)
		assert.Empty(t, blocked)
	})

	t.Run("Idempotent", func(t *testing.T) {
		booked := []BookedInterval{
			{StartMinutes: 600, DurationMinutes: 45},
			{StartMinutes: 900, DurationMinutes: 75},
		}
		first, err := ComputeBlockedSlots(booked, 45)
		assert.NoError(t, err)
		second, err := ComputeBlockedSlots(booked, 45)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Non Positive Duration Is Rejected", func(t *testing.T) {
		_, err := ComputeBlockedSlots(nil, 0)
		assert.Error(t, err)
		_, err = ComputeBlockedSlots(nil, -30)
		assert.Error(t, err)
	})
}

func TestValidateSelection(t *testing.T) {
	booked := []BookedInterval{{StartMinutes: 840, DurationMinutes: 60}}

	t.Run("Free Slot Passes", func(t *testing.T) {
		minutes, err := ValidateSelection("3:00 PM", booked, 30)
		assert.NoError(t, err)
		assert.Equal(t, 900, minutes)
	})

	t.Run("Blocked Slot Fails", func(t *testing.T) {
		_, err := ValidateSelection("2:00 PM", booked, 30)
		assert.Error(t, err)
	})

	t.Run("Off Grid Label Fails", func(t *testing.T) {
		_, err := ValidateSelection("8:30 AM", booked, 30)
		assert.Error(t, err, "before opening")
		_, err = ValidateSelection("6:30 PM", booked, 30)
		assert.Error(t, err, "after closing")
		_, err = ValidateSelection("2:15 PM", booked, 30)
		assert.Error(t, err, "not a half-hour mark")
	})

	t.Run("Malformed Label Fails Instead Of Defaulting", func(t *testing.T) {
		_, err := ValidateSelection("half past two", booked, 30)
		assert.Error(t, err)
	})
}
