// Package scheduling decides which calendar dates are selectable for
// pickup and delivery. The engine holds no state of its own: every
// answer is a pure function of the clock, the policy and the chosen
// pickup date.
package scheduling

import (
	"fmt"
	"strings"
	"time"
)

// Policy carries the service calendar rules. All three values have
// drifted across deployments, so they are configuration, not literals.
type Policy struct {
	// EligibleWeekdays are the days the vans go out, for both pickup
	// and delivery.
	EligibleWeekdays []time.Weekday
	// CutoffHour is the hour of day after which same-day pickup closes.
	// The boundary is strict: at the cutoff hour itself booking for
	// today is already over.
	CutoffHour int
	// MinLeadDays is the minimum number of days between pickup and
	// delivery. The lower bound is inclusive.
	MinLeadDays int
}

func DefaultPolicy() Policy {
	return Policy{
		EligibleWeekdays: []time.Weekday{time.Tuesday, time.Saturday},
		CutoffHour:       17,
		MinLeadDays:      2,
	}
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekdays converts config strings ("Tuesday", "saturday") into
// weekdays, rejecting anything unknown.
func ParseWeekdays(names []string) ([]time.Weekday, error) {
	var days []time.Weekday

	for _, name := range names {
		day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}

		days = append(days, day)
	}

	return days, nil
}

type Engine struct {
	policy   Policy
	eligible map[time.Weekday]bool
	now      func() time.Time
}

type Option func(*Engine)

// WithClock replaces the wall clock, used by tests to pin "today".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(policy Policy, opts ...Option) *Engine {
	e := &Engine{
		policy:   policy,
		eligible: make(map[time.Weekday]bool, len(policy.EligibleWeekdays)),
		now:      time.Now,
	}

	for _, day := range policy.EligibleWeekdays {
		e.eligible[day] = true
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) Policy() Policy {
	return e.policy
}

// DateOnly truncates a timestamp to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// compareDates orders two timestamps by calendar date alone. Incoming
// dates are parsed as UTC midnights while the clock runs in the server
// zone, so instant comparison would disagree on "today" in any non-UTC
// deployment; only the (year, month, day) tuples are compared.
func compareDates(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	if ay != by {
		return ay - by
	}

	if am != bm {
		return int(am) - int(bm)
	}

	return ad - bd
}

func (e *Engine) Today() time.Time {
	return DateOnly(e.now())
}

// IsPickupDateEligible reports whether clothes can be collected on the
// given date: not in the past, an eligible weekday, and when the date
// is today the current time must still be strictly before the cutoff
// hour. Past dates are ineligible regardless of weekday.
func (e *Engine) IsPickupDateEligible(date time.Time) bool {
	now := e.now()
	d := DateOnly(date)

	if compareDates(d, now) < 0 {
		return false
	}

	if !e.eligible[d.Weekday()] {
		return false
	}

	if compareDates(d, now) == 0 && now.Hour() >= e.policy.CutoffHour {
		return false
	}

	return true
}

// IsDeliveryDateEligible reports whether clean clothes can come back
// on the given date for the given pickup date. Without a pickup date
// no delivery date is eligible. A date exactly MinLeadDays after
// pickup is allowed if it falls on an eligible weekday; the engine
// never auto-advances a rejected date, the caller picks again.
func (e *Engine) IsDeliveryDateEligible(date, pickupDate time.Time) bool {
	if pickupDate.IsZero() {
		return false
	}

	d := DateOnly(date)
	if compareDates(d, e.MinimumDeliveryDate(pickupDate)) < 0 {
		return false
	}

	return e.eligible[d.Weekday()]
}

// MinimumDeliveryDate is pickup + MinLeadDays. Before a pickup date
// exists it falls back to tomorrow, a floor used only to bound UI
// exploration; delivery cannot be confirmed without a pickup date.
func (e *Engine) MinimumDeliveryDate(pickupDate time.Time) time.Time {
	if pickupDate.IsZero() {
		return e.Today().AddDate(0, 0, 1)
	}

	return DateOnly(pickupDate).AddDate(0, 0, e.policy.MinLeadDays)
}

// EarliestDeliveryDate finds the first eligible weekday at or after
// pickup + MinLeadDays. ok is false when no pickup date is set or the
// eligible set is empty.
func (e *Engine) EarliestDeliveryDate(pickupDate time.Time) (time.Time, bool) {
	if pickupDate.IsZero() || len(e.eligible) == 0 {
		return time.Time{}, false
	}

	d := e.MinimumDeliveryDate(pickupDate)
	for i := 0; i < 7; i++ {
		if e.eligible[d.Weekday()] {
			return d, true
		}

		d = d.AddDate(0, 0, 1)
	}

	return time.Time{}, false
}

// UpcomingPickupDates lists the eligible pickup dates within the next
// `days` days, starting today.
func (e *Engine) UpcomingPickupDates(days int) []time.Time {
	dates := make([]time.Time, 0, days/3+1)
	d := e.Today()

	for i := 0; i < days; i++ {
		if e.IsPickupDateEligible(d) {
			dates = append(dates, d)
		}

		d = d.AddDate(0, 0, 1)
	}

	return dates
}

// UpcomingDeliveryDates lists the eligible delivery dates within
// `days` days of the minimum delivery date for the given pickup.
func (e *Engine) UpcomingDeliveryDates(pickupDate time.Time, days int) []time.Time {
	dates := make([]time.Time, 0, days/3+1)
	d := e.MinimumDeliveryDate(pickupDate)

	for i := 0; i < days; i++ {
		if e.IsDeliveryDateEligible(d, pickupDate) {
			dates = append(dates, d)
		}

		d = d.AddDate(0, 0, 1)
	}

	return dates
}
