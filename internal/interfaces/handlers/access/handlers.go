package access

import (
	"errors"

	accesssvc "archcatalog-backend/internal/application/access"
	"archcatalog-backend/internal/middleware"
	"archcatalog-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Handlers holds dependencies for the beta gate endpoints.
type Handlers struct {
	Service *accesssvc.Service
}

// ValidateRequest is the gate form body (JSON or form-encoded).
type ValidateRequest struct {
	Key      string `json:"key" form:"key"`
	Redirect string `json:"redirect" form:"redirect"`
}

// GatePage GET /beta: data for the gate page: where to go after a successful key.
func (h *Handlers) GatePage(c *fiber.Ctx) error {
	return response.Success(c, "Beta access required", fiber.Map{
		"redirect":   accesssvc.SafeRedirect(c.Query("redirect")),
		"authorized": middleware.HasBetaAccess(c),
	}, nil)
}

// Validate POST /api/v1/beta/validate: check the shared secret and issue the credential cookie.
func (h *Handlers) Validate(c *fiber.Ctx) error {
	var req ValidateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, accesssvc.ErrMissingKey.Error(), fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Validate(req.Key); err != nil {
		switch {
		case errors.Is(err, accesssvc.ErrMissingKey):
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case errors.Is(err, accesssvc.ErrInvalidKey):
			log.Info().Str("trace_id", middleware.GetTraceID(c)).Str("ip", c.IP()).Msg("beta: invalid key submitted")
			return response.Error(c, err.Error(), fiber.StatusUnauthorized, nil)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}

	redirect := req.Redirect
	if redirect == "" {
		redirect = c.Query("redirect")
	}
	middleware.GrantBetaAccess(c)
	return response.Success(c, "Access granted", fiber.Map{
		"redirect": accesssvc.SafeRedirect(redirect),
	}, nil)
}

// Status GET /api/v1/beta/status: whether this visitor holds the credential.
func (h *Handlers) Status(c *fiber.Ctx) error {
	return response.Success(c, "Beta access status", fiber.Map{
		"authorized": middleware.HasBetaAccess(c),
	}, nil)
}

// Revoke DELETE /api/v1/beta/access: drop the credential cookie. Always succeeds.
func (h *Handlers) Revoke(c *fiber.Ctx) error {
	middleware.RevokeBetaAccess(c)
	return response.Success(c, "Access revoked", nil, nil)
}
