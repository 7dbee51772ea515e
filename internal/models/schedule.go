package models

import "time"

const DateLayout = "2006-01-02"

// TimeSlots are the fixed pickup/delivery windows offered by the
// service. A slot is only selectable once its date has been chosen.
var TimeSlots = []string{
	"9:00 AM - 11:00 AM",
	"11:00 AM - 1:00 PM",
	"1:00 PM - 3:00 PM",
	"3:00 PM - 5:00 PM",
	"5:00 PM - 7:00 PM",
}

func ValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}

	return false
}

// ScheduleSelection is the in-progress pickup/delivery choice of one
// checkout session. Dates are nil until picked.
type ScheduleSelection struct {
	PickupDate       *time.Time `json:"pickup_date,omitempty"`
	PickupTimeSlot   string     `json:"pickup_time_slot,omitempty"`
	DeliveryDate     *time.Time `json:"delivery_date,omitempty"`
	DeliveryTimeSlot string     `json:"delivery_time_slot,omitempty"`
}

// IsComplete reports whether both dates and both slots are set, which
// gates progression to the submission step.
func (s *ScheduleSelection) IsComplete() bool {
	return s.PickupDate != nil && s.DeliveryDate != nil &&
		s.PickupTimeSlot != "" && s.DeliveryTimeSlot != ""
}
