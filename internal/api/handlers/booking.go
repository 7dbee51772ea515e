package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/oparantho/saakwa-laundry-platform/internal/api/middleware"
	appErrors "github.com/oparantho/saakwa-laundry-platform/internal/errors"
	"github.com/oparantho/saakwa-laundry-platform/internal/metrics"
	"github.com/oparantho/saakwa-laundry-platform/internal/models"
	service "github.com/oparantho/saakwa-laundry-platform/internal/services"
	"github.com/oparantho/saakwa-laundry-platform/internal/utils/response"
)

// receipts are phone photos of bank transfer confirmations
const maxReceiptBytes = 10 << 20

type BookingHandler struct {
	bookingService *service.BookingService
	validator      *validator.Validate
}

func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService, validator: validator.New()}
}

// Submit finalizes the wizard. It needs both the checkout session (for
// the cart and schedule) and an authenticated user (for ownership).
func (h *BookingHandler) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		c, ok := claims(w, r)
		if !ok {
			return
		}

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.SubmitBookingRequest

		if !decodeJSONBody(w, r, &req) {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		booking, err := h.bookingService.Submit(r.Context(), session, c.UserID, &req)
		if err != nil {
			logger.Warn("Booking submission failed", slog.Any("error", err))
			metrics.RecordBookingSubmission("failed")
			response.Error(w, err)

			return
		}

		logger.Info("Booking submitted", slog.String("bookingId", booking.ID.String()))
		metrics.RecordBookingSubmission("submitted")
		response.Success(w, http.StatusCreated, booking)
	}
}

// UploadReceipt accepts a multipart upload of the payment receipt and
// attaches it to the session ahead of submission.
func (h *BookingHandler) UploadReceipt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		if _, ok := claims(w, r); !ok {
			return
		}

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxReceiptBytes)

		file, header, err := r.FormFile("receipt")
		if err != nil {
			response.Error(w, appErrors.BadRequestError("A 'receipt' file is required").WithError(err))

			return
		}
		defer file.Close()

		path, err := h.bookingService.SaveReceipt(r.Context(), session, header.Filename, file)
		if err != nil {
			logger.Error("Receipt upload failed", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Receipt uploaded", slog.String("path", path))
		response.Success(w, http.StatusCreated, map[string]string{"receipt_path": path})
	}
}

func (h *BookingHandler) GetBooking() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := claims(w, r)
		if !ok {
			return
		}

		bookingID, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid booking ID"))

			return
		}

		booking, err := h.bookingService.GetBooking(r.Context(), c.UserID, bookingID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, booking)
	}
}

func (h *BookingHandler) ListBookings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := claims(w, r)
		if !ok {
			return
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		size, _ := strconv.Atoi(r.URL.Query().Get("size"))

		resp, err := h.bookingService.ListBookings(r.Context(), c.UserID, page, size)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}
