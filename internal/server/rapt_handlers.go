package server

import (
	"raptor/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateRapt handles POST /api/v1/rapt/create
func (s *Server) CreateRapt(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return message(c, statusFailure, "Title and content are required")
	}
	if req.Title == "" || req.Content == "" {
		return message(c, statusFailure, "Title and content are required")
	}

	rapt := &models.Rapt{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.raptRepo.Create(c.Context(), rapt); err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	return c.JSON(fiber.Map{
		"id":    rapt.ID,
		"title": rapt.Title,
	})
}

// EditRapt handles POST /api/v1/rapt/edit/:raptId
//
// Only the owner can edit; a rapt owned by someone else answers exactly
// like a missing one.
func (s *Server) EditRapt(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	raptID, err := c.ParamsInt("raptId")
	if err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return message(c, statusFailure, "Title and content are required")
	}
	if req.Title == "" || req.Content == "" {
		return message(c, statusFailure, "Title and content are required")
	}

	rapt, err := s.raptRepo.UpdateOwned(c.Context(), uint(raptID), userID, req.Title, req.Content)
	if err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	return c.JSON(fiber.Map{
		"id":    rapt.ID,
		"title": rapt.Title,
	})
}

// DeleteRapt handles DELETE /api/v1/rapt/delete/:raptId
func (s *Server) DeleteRapt(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	raptID, err := c.ParamsInt("raptId")
	if err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	if err := s.raptRepo.DeleteOwned(c.Context(), uint(raptID), userID); err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	return message(c, fiber.StatusOK, "Rapt deleted")
}

// ViewRapt handles GET /api/v1/rapt/view/:raptId (public)
func (s *Server) ViewRapt(c *fiber.Ctx) error {
	raptID, err := c.ParamsInt("raptId")
	if err != nil {
		return message(c, statusFailure, "Error occured!")
	}

	rapt, err := s.raptRepo.GetByID(c.Context(), uint(raptID))
	if err != nil {
		if models.IsNotFound(err) {
			// A missing rapt is a regular response, not an error.
			return message(c, fiber.StatusOK, "No rapt exists")
		}
		return message(c, statusFailure, "Error occured!")
	}

	return c.JSON(fiber.Map{"rapt": rapt})
}

// ToggleLikeRapt handles POST /api/v1/rapt/like/:raptId
//
// One endpoint both likes and unlikes: the current state decides.
func (s *Server) ToggleLikeRapt(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	raptID, err := c.ParamsInt("raptId")
	if err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	liked, err := s.raptRepo.ToggleLike(c.Context(), userID, uint(raptID))
	if err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	if liked {
		return message(c, fiber.StatusOK, "Rapt liked")
	}
	return message(c, fiber.StatusOK, "Rapt unliked")
}

// GetUserRapts handles GET /api/v1/rapt/:userId/all (public)
func (s *Server) GetUserRapts(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	rapts, err := s.raptRepo.ListByUser(c.Context(), uint(userID))
	if err != nil {
		return message(c, statusFailure, "An error occured!")
	}
	if len(rapts) == 0 {
		return message(c, statusFailure, "No rapts found")
	}

	return c.JSON(fiber.Map{"rapts": rapts})
}

// GetLikedRapts handles GET /api/v1/rapt/liked/:userId (public)
func (s *Server) GetLikedRapts(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return message(c, statusFailure, "Error fetching rapts!")
	}

	rapts, err := s.raptRepo.ListLikedBy(c.Context(), uint(userID))
	if err != nil {
		return message(c, statusFailure, "Error fetching rapts!")
	}
	if len(rapts) == 0 {
		return message(c, statusFailure, "Rapts not found!")
	}

	return c.JSON(fiber.Map{"likedRapts": rapts})
}

// GetLatestRapts handles GET /api/v1/rapt/allLatest (public)
func (s *Server) GetLatestRapts(c *fiber.Ctx) error {
	rapts, err := s.raptRepo.ListLatest(c.Context())
	if err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	return c.JSON(fiber.Map{"rapts": rapts})
}
