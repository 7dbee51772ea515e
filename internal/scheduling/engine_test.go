package scheduling_test

import (
	"testing"
	"time"

	"github.com/oparantho/saakwa-laundry-platform/internal/scheduling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tue 2025-01-07 is a service day; Sat 2025-01-11 is the next one.
var (
	tuesday  = time.Date(2025, time.January, 7, 0, 0, 0, 0, time.UTC)
	thursday = time.Date(2025, time.January, 9, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, time.January, 11, 0, 0, 0, 0, time.UTC)
)

func engineAt(t *testing.T, now time.Time) *scheduling.Engine {
	t.Helper()

	return scheduling.NewEngine(scheduling.DefaultPolicy(), scheduling.WithClock(func() time.Time {
		return now
	}))
}

func TestParseWeekdays(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		days, err := scheduling.ParseWeekdays([]string{"Tuesday", " saturday "})

		require.NoError(t, err)
		assert.Equal(t, []time.Weekday{time.Tuesday, time.Saturday}, days)
	})

	t.Run("Failure - Unknown Day", func(t *testing.T) {
		_, err := scheduling.ParseWeekdays([]string{"Tuesday", "Caturday"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Caturday")
	})
}

func TestIsPickupDateEligible(t *testing.T) {
	t.Run("Past Dates Always Ineligible", func(t *testing.T) {
		// Clock on a Saturday; the previous Tuesday is an eligible
		// weekday but already gone.
		engine := engineAt(t, saturday.Add(9*time.Hour))

		assert.False(t, engine.IsPickupDateEligible(tuesday))
		assert.False(t, engine.IsPickupDateEligible(saturday.AddDate(0, 0, -7)))
	})

	t.Run("Ineligible Weekday", func(t *testing.T) {
		engine := engineAt(t, tuesday.Add(9*time.Hour))

		assert.False(t, engine.IsPickupDateEligible(thursday))
		assert.False(t, engine.IsPickupDateEligible(tuesday.AddDate(0, 0, 1)))
	})

	t.Run("Future Service Days Eligible", func(t *testing.T) {
		engine := engineAt(t, tuesday.Add(9*time.Hour))

		assert.True(t, engine.IsPickupDateEligible(saturday))
		assert.True(t, engine.IsPickupDateEligible(tuesday.AddDate(0, 0, 7)))
	})

	t.Run("Today Before Cutoff", func(t *testing.T) {
		engine := engineAt(t, tuesday.Add(16*time.Hour+59*time.Minute))

		assert.True(t, engine.IsPickupDateEligible(tuesday))
	})

	t.Run("Today At Cutoff Hour Exactly", func(t *testing.T) {
		// Strictly before, not at-or-before: 17:00 on the dot is late.
		engine := engineAt(t, tuesday.Add(17*time.Hour))

		assert.False(t, engine.IsPickupDateEligible(tuesday))
	})

	t.Run("Today After Cutoff", func(t *testing.T) {
		engine := engineAt(t, tuesday.Add(18*time.Hour))

		assert.False(t, engine.IsPickupDateEligible(tuesday))
		// The cutoff only closes same-day booking; Saturday stays open.
		assert.True(t, engine.IsPickupDateEligible(saturday))
	})

	t.Run("Today On Non Service Day", func(t *testing.T) {
		engine := engineAt(t, thursday.Add(9*time.Hour))

		assert.False(t, engine.IsPickupDateEligible(thursday))
	})

	t.Run("Time Of Day On Date Is Ignored", func(t *testing.T) {
		engine := engineAt(t, tuesday.Add(9*time.Hour))

		// A future date carrying an evening timestamp is still the
		// same calendar date.
		assert.True(t, engine.IsPickupDateEligible(saturday.Add(23*time.Hour)))
	})

	t.Run("Clock Zone Does Not Shift Today", func(t *testing.T) {
		// Parsed dates are UTC midnights; the wall clock runs in the
		// server zone. The same calendar Tuesday must be recognized as
		// today on either side of UTC.
		lagos := time.FixedZone("WAT", 1*60*60)
		newYork := time.FixedZone("EST", -5*60*60)

		t.Run("Positive Offset After Cutoff", func(t *testing.T) {
			engine := engineAt(t, time.Date(2025, time.January, 7, 18, 0, 0, 0, lagos))

			assert.False(t, engine.IsPickupDateEligible(tuesday))
		})

		t.Run("Positive Offset Before Cutoff", func(t *testing.T) {
			engine := engineAt(t, time.Date(2025, time.January, 7, 9, 0, 0, 0, lagos))

			assert.True(t, engine.IsPickupDateEligible(tuesday))
		})

		t.Run("Negative Offset Before Cutoff", func(t *testing.T) {
			engine := engineAt(t, time.Date(2025, time.January, 7, 9, 0, 0, 0, newYork))

			assert.True(t, engine.IsPickupDateEligible(tuesday))
		})

		t.Run("Negative Offset After Cutoff", func(t *testing.T) {
			engine := engineAt(t, time.Date(2025, time.January, 7, 18, 0, 0, 0, newYork))

			assert.False(t, engine.IsPickupDateEligible(tuesday))
			assert.True(t, engine.IsPickupDateEligible(saturday))
		})
	})
}

func TestIsDeliveryDateEligible(t *testing.T) {
	engine := engineAt(t, tuesday.Add(9*time.Hour))

	t.Run("No Pickup Date", func(t *testing.T) {
		assert.False(t, engine.IsDeliveryDateEligible(saturday, time.Time{}))
	})

	t.Run("Before Minimum Lead Time", func(t *testing.T) {
		// Lead is 2 days; pickup Tue + 2 = Thu, so anything before
		// Thursday is out even on a service day.
		assert.False(t, engine.IsDeliveryDateEligible(tuesday, tuesday))
		assert.False(t, engine.IsDeliveryDateEligible(tuesday.AddDate(0, 0, 1), tuesday))
	})

	t.Run("Lower Bound Inclusive But Weekday Gated", func(t *testing.T) {
		// Pickup+2 lands on Thursday: far enough out, wrong weekday.
		assert.False(t, engine.IsDeliveryDateEligible(thursday, tuesday))
	})

	t.Run("First Service Day After Lead", func(t *testing.T) {
		assert.True(t, engine.IsDeliveryDateEligible(saturday, tuesday))
	})

	t.Run("Past Lead On Service Day", func(t *testing.T) {
		// Pickup Sat + 3 = Tuesday: past the lead and a service day.
		assert.True(t, engine.IsDeliveryDateEligible(saturday.AddDate(0, 0, 3), saturday))
	})
}

func TestMinimumDeliveryDate(t *testing.T) {
	engine := engineAt(t, tuesday.Add(9*time.Hour))

	t.Run("With Pickup Date", func(t *testing.T) {
		assert.Equal(t, thursday, engine.MinimumDeliveryDate(tuesday))
	})

	t.Run("Without Pickup Date Falls Back To Tomorrow", func(t *testing.T) {
		assert.Equal(t, tuesday.AddDate(0, 0, 1), engine.MinimumDeliveryDate(time.Time{}))
	})
}

func TestEarliestDeliveryDate(t *testing.T) {
	engine := engineAt(t, tuesday.Add(9*time.Hour))

	t.Run("Advances Past Ineligible Weekday", func(t *testing.T) {
		// Pickup Tue: minimum is Thu, first Tue/Sat at or after Thu
		// is Saturday.
		earliest, ok := engine.EarliestDeliveryDate(tuesday)

		require.True(t, ok)
		assert.Equal(t, saturday, earliest)
		assert.True(t, engine.IsDeliveryDateEligible(earliest, tuesday))
	})

	t.Run("Minimum Itself Eligible", func(t *testing.T) {
		// Pickup Sat 11th: minimum is Mon 13th, earliest is Tue 14th.
		earliest, ok := engine.EarliestDeliveryDate(saturday)

		require.True(t, ok)
		assert.Equal(t, saturday.AddDate(0, 0, 3), earliest)
	})

	t.Run("No Pickup Date", func(t *testing.T) {
		_, ok := engine.EarliestDeliveryDate(time.Time{})

		assert.False(t, ok)
	})

	t.Run("Empty Eligible Set", func(t *testing.T) {
		empty := scheduling.NewEngine(scheduling.Policy{CutoffHour: 17, MinLeadDays: 2},
			scheduling.WithClock(func() time.Time { return tuesday.Add(9 * time.Hour) }))

		_, ok := empty.EarliestDeliveryDate(tuesday)

		assert.False(t, ok)
	})
}

func TestUpcomingDates(t *testing.T) {
	engine := engineAt(t, tuesday.Add(9*time.Hour))

	t.Run("Pickup Window Includes Today Before Cutoff", func(t *testing.T) {
		dates := engine.UpcomingPickupDates(7)

		require.Len(t, dates, 2)
		assert.Equal(t, tuesday, dates[0])
		assert.Equal(t, saturday, dates[1])
	})

	t.Run("Pickup Window After Cutoff Skips Today", func(t *testing.T) {
		late := engineAt(t, tuesday.Add(19*time.Hour))

		dates := late.UpcomingPickupDates(7)

		require.Len(t, dates, 1)
		assert.Equal(t, saturday, dates[0])
	})

	t.Run("Delivery Window Respects Lead And Weekdays", func(t *testing.T) {
		dates := engine.UpcomingDeliveryDates(tuesday, 7)

		require.NotEmpty(t, dates)
		assert.Equal(t, saturday, dates[0])

		for _, d := range dates {
			assert.True(t, engine.IsDeliveryDateEligible(d, tuesday))
		}
	})
}
