package waitlist

import (
	"errors"

	waitlistsvc "archcatalog-backend/internal/application/waitlist"
	"archcatalog-backend/internal/middleware"
	"archcatalog-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Handlers struct {
	Service *waitlistsvc.Service
}

type JoinRequest struct {
	Email  string `json:"email" form:"email"`
	Source string `json:"source" form:"source"`
}

// Join POST /api/v1/waitlist
func (h *Handlers) Join(c *fiber.Ctx) error {
	var req JoinRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Email is required", fiber.StatusBadRequest, nil)
	}
	created, err := h.Service.Join(c.UserContext(), req.Email, req.Source)
	if err != nil {
		switch {
		case errors.Is(err, waitlistsvc.ErrInvalidEmail):
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case errors.Is(err, waitlistsvc.ErrNotConfigured):
			return response.Error(c, err.Error(), fiber.StatusServiceUnavailable, nil)
		default:
			log.Error().Err(err).Str("trace_id", middleware.GetTraceID(c)).Msg("waitlist: insert failed")
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
	}
	if !created {
		return response.Success(c, "Already on the waitlist", fiber.Map{"joined": false}, nil)
	}
	return response.SuccessCreated(c, "Joined the waitlist", fiber.Map{"joined": true}, nil)
}
