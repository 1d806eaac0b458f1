package server

import (
	"raptor/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateRipple handles POST /api/v1/ripple/create/:raptId
func (s *Server) CreateRipple(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	raptID, err := c.ParamsInt("raptId")
	if err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return message(c, statusFailure, "Content is required")
	}
	// Empty content never reaches the store.
	if req.Content == "" {
		return message(c, statusFailure, "Content is required")
	}

	ripple := &models.Ripple{
		UserID:  userID,
		RaptID:  uint(raptID),
		Content: req.Content,
	}
	if err := s.rippleRepo.Create(c.Context(), ripple); err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	return c.JSON(fiber.Map{
		"id":      ripple.ID,
		"content": ripple.Content,
	})
}

// GetRipples handles GET /api/v1/ripple/view/:raptId
func (s *Server) GetRipples(c *fiber.Ctx) error {
	raptID, err := c.ParamsInt("raptId")
	if err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	ripples, err := s.rippleRepo.ListByRapt(c.Context(), uint(raptID))
	if err != nil {
		return message(c, statusFailure, "An error occured!")
	}
	if len(ripples) == 0 {
		return message(c, fiber.StatusOK, "No ripples found")
	}

	return c.JSON(ripples)
}

// EditRipple handles PUT /api/v1/ripple/edit/:raptId/:rippleId
//
// The (ripple, user, rapt) triple must match a single row; anything else
// is a not-found, so existence never leaks to non-owners.
func (s *Server) EditRipple(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	raptID, err := c.ParamsInt("raptId")
	if err != nil {
		return message(c, statusFailure, "An error occured!")
	}
	rippleID, err := c.ParamsInt("rippleId")
	if err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return message(c, statusFailure, "Content is required")
	}
	if req.Content == "" {
		return message(c, statusFailure, "Content is required")
	}

	ripple, err := s.rippleRepo.UpdateOwned(c.Context(), uint(rippleID), userID, uint(raptID), req.Content)
	if err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	return c.JSON(fiber.Map{
		"id":      ripple.ID,
		"content": ripple.Content,
	})
}

// DeleteRipple handles DELETE /api/v1/ripple/delete/:raptId/:rippleId
func (s *Server) DeleteRipple(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	raptID, err := c.ParamsInt("raptId")
	if err != nil {
		return message(c, statusFailure, "An error occured!")
	}
	rippleID, err := c.ParamsInt("rippleId")
	if err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	if err := s.rippleRepo.DeleteOwned(c.Context(), uint(rippleID), userID, uint(raptID)); err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	return message(c, fiber.StatusOK, "Ripple deleted successfully")
}
