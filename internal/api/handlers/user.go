package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/oparantho/saakwa-laundry-platform/internal/api/middleware"
	"github.com/oparantho/saakwa-laundry-platform/internal/models"
	service "github.com/oparantho/saakwa-laundry-platform/internal/services"
	"github.com/oparantho/saakwa-laundry-platform/internal/utils/response"
)

type UserHandler struct {
	userService *service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest

		if !decodeJSONBody(w, r, &req) {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		user, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			logger.Error("User registration failed", slog.String("email", req.Email), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("User registered", slog.String("userId", user.ID.String()))
		response.Success(w, http.StatusCreated, &models.ProfileResponse{ID: user.ID, Email: user.Email, Name: user.Name})
	}
}

func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest

		if !decodeJSONBody(w, r, &req) {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		resp, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			logger.Error("Login failed", slog.String("email", req.Email), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		if !resp.Success {
			status := http.StatusUnauthorized
			if resp.RetryAfter > 0 {
				status = http.StatusTooManyRequests
			}

			logger.Warn("Login rejected", slog.String("email", req.Email))
			response.WriteJson(w, status, response.APIResponse{Success: false, Data: resp})

			return
		}

		logger.Info("User logged in", slog.String("email", req.Email))
		response.Success(w, http.StatusOK, resp)
	}
}

func (h *UserHandler) RequestPasswordReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.PasswordResetRequest

		if !decodeJSONBody(w, r, &req) {
			return
		}

		if !validateStruct(w, h.validator, req) {
			return
		}

		if err := h.userService.RequestPasswordReset(r.Context(), &req); err != nil {
			logger.Error("Password reset request failed", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusAccepted, map[string]string{
			"message": "If the email is registered, a reset link has been sent",
		})
	}
}

func (h *UserHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		c, ok := claims(w, r)
		if !ok {
			return
		}

		user, err := h.userService.GetUserByID(r.Context(), c.UserID)
		if err != nil {
			logger.Warn("Profile lookup failed", slog.String("userId", c.UserID.String()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, &models.ProfileResponse{ID: user.ID, Email: user.Email, Name: user.Name})
	}
}
