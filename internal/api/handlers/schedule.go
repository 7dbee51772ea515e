package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	appErrors "github.com/oparantho/saakwa-laundry-platform/internal/errors"
	service "github.com/oparantho/saakwa-laundry-platform/internal/services"
	"github.com/oparantho/saakwa-laundry-platform/internal/utils"
	"github.com/oparantho/saakwa-laundry-platform/internal/utils/response"
)

type dateRequest struct {
	Date string `json:"date" validate:"required"`
}

type slotRequest struct {
	Slot string `json:"slot" validate:"required"`
}

type ScheduleHandler struct {
	scheduleService *service.ScheduleService
	validator       *validator.Validate
}

func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService, validator: validator.New()}
}

func (h *ScheduleHandler) GetSchedule() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		view, err := h.scheduleService.GetSchedule(r.Context(), session)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *ScheduleHandler) SetPickupDate() http.HandlerFunc {
	return h.dateEndpoint(h.scheduleService.SetPickupDate)
}

func (h *ScheduleHandler) SetDeliveryDate() http.HandlerFunc {
	return h.dateEndpoint(h.scheduleService.SetDeliveryDate)
}

func (h *ScheduleHandler) SetPickupTimeSlot() http.HandlerFunc {
	return h.slotEndpoint(h.scheduleService.SetPickupTimeSlot)
}

func (h *ScheduleHandler) SetDeliveryTimeSlot() http.HandlerFunc {
	return h.slotEndpoint(h.scheduleService.SetDeliveryTimeSlot)
}

// The four date/slot setters differ only in the service call, so the
// decode-validate-respond shell is shared.
func (h *ScheduleHandler) dateEndpoint(set func(ctx context.Context, sessionID string, date time.Time) (*service.ScheduleView, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req dateRequest

		if !decodeJSONBody(w, r, &req) {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		date, err := utils.ParseDate(req.Date)
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid date, expected YYYY-MM-DD").WithError(err))

			return
		}

		view, err := set(r.Context(), session, date)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *ScheduleHandler) slotEndpoint(set func(ctx context.Context, sessionID, slot string) (*service.ScheduleView, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req slotRequest

		if !decodeJSONBody(w, r, &req) {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		view, err := set(r.Context(), session, req.Slot)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}
