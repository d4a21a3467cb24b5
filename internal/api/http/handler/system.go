package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/resonara/resonara_backend/config"
)

type SystemHandler struct {
	cfg *config.Config
}

func NewSystemHandler(cfg *config.Config) *SystemHandler {
	return &SystemHandler{cfg: cfg}
}

// GET /system/diag
//
// Reports which config sections are present, never their values.
func (h *SystemHandler) Diag(c fiber.Ctx) error {
	return ok(c, config.Diagnostics(h.cfg))
}
