package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/oparantho/saakwa-laundry-platform/internal/api/middleware"
	appErrors "github.com/oparantho/saakwa-laundry-platform/internal/errors"
	"github.com/oparantho/saakwa-laundry-platform/internal/models"
	"github.com/oparantho/saakwa-laundry-platform/internal/utils"
	"github.com/oparantho/saakwa-laundry-platform/internal/utils/response"
)

// decodeJSONBody reads and parses the body, writing the error response
// itself. Returns false when the handler should stop.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := utils.DecodeJSONBody(r, dest); err != nil {
		response.Error(w, appErrors.BadRequestError("Invalid request payload").WithError(err))

		return false
	}

	return true
}

func validateStruct(w http.ResponseWriter, validate *validator.Validate, data any) bool {
	if err := utils.ValidateStruct(validate, data); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
		} else {
			response.Error(w, appErrors.ValidationError("Invalid input"))
		}

		return false
	}

	return true
}

// sessionID pulls the checkout session from the request context; the
// session middleware guarantees one on every wizard route.
func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := middleware.SessionFromContext(r.Context())
	if id == "" {
		response.Error(w, appErrors.BadRequestError("Missing checkout session"))

		return "", false
	}

	return id, true
}

// claims pulls the authenticated user; the auth middleware guarantees
// them on protected routes.
func claims(w http.ResponseWriter, r *http.Request) (*models.Claims, bool) {
	c := middleware.ClaimsFromContext(r.Context())
	if c == nil {
		response.Error(w, appErrors.UnauthorizedError("Authentication required"))

		return nil, false
	}

	return c, true
}
