package handlers

import (
	"log/slog"
	"net/http"

	"github.com/oparantho/saakwa-laundry-platform/internal/api/middleware"
	appErrors "github.com/oparantho/saakwa-laundry-platform/internal/errors"
	service "github.com/oparantho/saakwa-laundry-platform/internal/services"
	"github.com/oparantho/saakwa-laundry-platform/internal/utils/response"
)

type CartHandler struct {
	cartService *service.CartService
}

func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		view, err := h.cartService.GetCart(r.Context(), session)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		itemID := r.PathValue("itemID")
		if itemID == "" {
			response.Error(w, appErrors.BadRequestError("Item ID is required"))

			return
		}

		view, err := h.cartService.AddItem(r.Context(), session, itemID)
		if err != nil {
			logger.Warn("Failed to add cart item", slog.String("itemId", itemID), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) DecrementItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		itemID := r.PathValue("itemID")
		if itemID == "" {
			response.Error(w, appErrors.BadRequestError("Item ID is required"))

			return
		}

		view, err := h.cartService.DecrementItem(r.Context(), session, itemID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}
