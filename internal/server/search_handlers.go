package server

import (
	"github.com/gofiber/fiber/v2"
)

// SearchRapts handles GET /api/v1/search/rapts/:query
//
// Case-insensitive substring match on the title; the full matching set
// is returned, unranked. An empty set is a distinct response, not a fault.
func (s *Server) SearchRapts(c *fiber.Ctx) error {
	query := c.Params("query")

	rapts, err := s.raptRepo.Search(c.Context(), query)
	if err != nil {
		return message(c, statusFailure, "An error occured!")
	}
	if len(rapts) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"Message": "No rapts found"})
	}

	return c.JSON(rapts)
}

// SearchProfiles handles GET /api/v1/search/profiles/:query
func (s *Server) SearchProfiles(c *fiber.Ctx) error {
	query := c.Params("query")

	profiles, err := s.userRepo.SearchByName(c.Context(), query)
	if err != nil {
		return message(c, statusFailure, "An error occured!")
	}
	if len(profiles) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"Message": "No profiles found"})
	}

	return c.JSON(profiles)
}
