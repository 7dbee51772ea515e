package service

import (
	"context"
	"time"

	"github.com/oparantho/saakwa-laundry-platform/internal/errors"
	"github.com/oparantho/saakwa-laundry-platform/internal/models"
	repository "github.com/oparantho/saakwa-laundry-platform/internal/repositories"
	"github.com/oparantho/saakwa-laundry-platform/internal/scheduling"
)

// lookahead window for the date pickers, in days
const upcomingWindowDays = 28

// ScheduleView is the scheduling step payload: the current selection
// plus everything the date/slot pickers need to render.
type ScheduleView struct {
	Selection             *models.ScheduleSelection `json:"selection"`
	TimeSlots             []string                  `json:"time_slots"`
	UpcomingPickupDates   []time.Time               `json:"upcoming_pickup_dates"`
	UpcomingDeliveryDates []time.Time               `json:"upcoming_delivery_dates,omitempty"`
	EarliestDeliveryDate  *time.Time                `json:"earliest_delivery_date,omitempty"`
}

type ScheduleService struct {
	engine   *scheduling.Engine
	sessions repository.SessionStore
}

func NewScheduleService(engine *scheduling.Engine, sessions repository.SessionStore) *ScheduleService {
	return &ScheduleService{engine: engine, sessions: sessions}
}

func (s *ScheduleService) GetSchedule(ctx context.Context, sessionID string) (*ScheduleView, error) {
	selection, err := s.sessions.GetSchedule(ctx, sessionID)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to load schedule").WithError(err)
	}

	return s.view(selection), nil
}

// SetPickupDate validates and stores the pickup date. A delivery date
// chosen earlier that the new pickup date pushes out of range is
// cleared along with its slot; it is never auto-advanced.
func (s *ScheduleService) SetPickupDate(ctx context.Context, sessionID string, date time.Time) (*ScheduleView, error) {
	if !s.engine.IsPickupDateEligible(date) {
		return nil, errors.ValidationError("Pickup is not available on this date")
	}

	selection, err := s.sessions.GetSchedule(ctx, sessionID)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to load schedule").WithError(err)
	}

	d := scheduling.DateOnly(date)
	selection.PickupDate = &d

	if selection.DeliveryDate != nil && !s.engine.IsDeliveryDateEligible(*selection.DeliveryDate, d) {
		selection.DeliveryDate = nil
		selection.DeliveryTimeSlot = ""
	}

	if err := s.sessions.SaveSchedule(ctx, sessionID, selection); err != nil {
		return nil, errors.ThirdPartyError("Failed to save schedule").WithError(err)
	}

	return s.view(selection), nil
}

func (s *ScheduleService) SetPickupTimeSlot(ctx context.Context, sessionID, slot string) (*ScheduleView, error) {
	if !models.ValidTimeSlot(slot) {
		return nil, errors.ValidationError("Unknown time slot")
	}

	selection, err := s.sessions.GetSchedule(ctx, sessionID)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to load schedule").WithError(err)
	}

	if selection.PickupDate == nil {
		return nil, errors.BadRequestError("Select a pickup date before choosing a time slot")
	}

	selection.PickupTimeSlot = slot

	if err := s.sessions.SaveSchedule(ctx, sessionID, selection); err != nil {
		return nil, errors.ThirdPartyError("Failed to save schedule").WithError(err)
	}

	return s.view(selection), nil
}

func (s *ScheduleService) SetDeliveryDate(ctx context.Context, sessionID string, date time.Time) (*ScheduleView, error) {
	selection, err := s.sessions.GetSchedule(ctx, sessionID)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to load schedule").WithError(err)
	}

	if selection.PickupDate == nil {
		return nil, errors.BadRequestError("Select a pickup date before choosing a delivery date")
	}

	if !s.engine.IsDeliveryDateEligible(date, *selection.PickupDate) {
		return nil, errors.ValidationError("Delivery is not available on this date")
	}

	d := scheduling.DateOnly(date)
	selection.DeliveryDate = &d

	if err := s.sessions.SaveSchedule(ctx, sessionID, selection); err != nil {
		return nil, errors.ThirdPartyError("Failed to save schedule").WithError(err)
	}

	return s.view(selection), nil
}

func (s *ScheduleService) SetDeliveryTimeSlot(ctx context.Context, sessionID, slot string) (*ScheduleView, error) {
	if !models.ValidTimeSlot(slot) {
		return nil, errors.ValidationError("Unknown time slot")
	}

	selection, err := s.sessions.GetSchedule(ctx, sessionID)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to load schedule").WithError(err)
	}

	if selection.DeliveryDate == nil {
		return nil, errors.BadRequestError("Select a delivery date before choosing a time slot")
	}

	selection.DeliveryTimeSlot = slot

	if err := s.sessions.SaveSchedule(ctx, sessionID, selection); err != nil {
		return nil, errors.ThirdPartyError("Failed to save schedule").WithError(err)
	}

	return s.view(selection), nil
}

func (s *ScheduleService) view(selection *models.ScheduleSelection) *ScheduleView {
	view := &ScheduleView{
		Selection:           selection,
		TimeSlots:           models.TimeSlots,
		UpcomingPickupDates: s.engine.UpcomingPickupDates(upcomingWindowDays),
	}

	if selection.PickupDate != nil {
		view.UpcomingDeliveryDates = s.engine.UpcomingDeliveryDates(*selection.PickupDate, upcomingWindowDays)

		if earliest, ok := s.engine.EarliestDeliveryDate(*selection.PickupDate); ok {
			view.EarliestDeliveryDate = &earliest
		}
	}

	return view
}
