package server

import (
	"raptor/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// profileView is the public slice of a user profile.
type profileView struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

// GetUserProfile handles GET /api/v1/user/profile/:userId
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	user, err := s.userRepo.GetByID(c.Context(), uint(userID))
	if err != nil {
		if models.IsNotFound(err) {
			return message(c, fiber.StatusNotFound, "User not found")
		}
		return message(c, statusFailure, "An error occured!")
	}

	return c.JSON(fiber.Map{
		"user": profileView{
			ID:       user.ID,
			Name:     user.Name,
			Username: user.Username,
			Email:    user.Email,
			Verified: user.Verified,
		},
	})
}

// IsCurrentUserProfile handles POST /api/v1/user/profile/me
//
// Tells the client whether a profile it is rendering belongs to the
// holder of the presented token.
func (s *Server) IsCurrentUserProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		RequestedProfileID uint `json:"requestedProfileId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	return c.JSON(fiber.Map{
		"isCurrentUserProfile": userID == req.RequestedProfileID,
	})
}

// FollowUnfollow handles POST /api/v1/user/followUnfollow/:userToBeFollowedOrUnfollowed
//
// The same toggle shape as the rapt like, minus the counter.
func (s *Server) FollowUnfollow(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	followeeID, err := c.ParamsInt("userToBeFollowedOrUnfollowed")
	if err != nil {
		return message(c, statusFailure, "Error occured!")
	}

	followed, err := s.followRepo.Toggle(c.Context(), userID, uint(followeeID))
	if err != nil {
		return message(c, statusFailure, "Error occured!")
	}

	if followed {
		return message(c, fiber.StatusOK, "Followed")
	}
	return message(c, fiber.StatusOK, "Unfollowed")
}

// EditProfile handles PUT /api/v1/user/editProfile
func (s *Server) EditProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Name     string `json:"name"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return message(c, statusFailure, "Error occured!")
	}

	// Another account already holding the username or email blocks the edit.
	duplicate, err := s.userRepo.FindDuplicate(c.Context(), req.Username, req.Email, userID)
	if err != nil {
		return message(c, statusFailure, "Error occured!")
	}
	if duplicate != nil {
		return message(c, statusFailure, "Username or email already exists!")
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return message(c, statusFailure, "Error occured!")
	}

	user.Name = req.Name
	user.Username = req.Username
	user.Email = req.Email
	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return message(c, statusFailure, "Error occured!")
	}

	return message(c, fiber.StatusOK, "Details updated!")
}

// ChangePassword handles PUT /api/v1/user/changePassword
func (s *Server) ChangePassword(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		if models.IsNotFound(err) {
			return message(c, statusFailure, "User not found")
		}
		return message(c, statusFailure, "An error occured!")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	user.Password = string(hashedPassword)
	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return message(c, statusFailure, "An error occured!")
	}

	return message(c, fiber.StatusOK, "Details updated successfully")
}

// GetFollowers handles GET /api/v1/user/getFollowers/:userId
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return message(c, statusFailure, "Error occured while fetching followers")
	}

	follows, err := s.followRepo.ListFollowers(c.Context(), uint(userID))
	if err != nil {
		return message(c, statusFailure, "Error occured while fetching followers")
	}

	followers := make([]fiber.Map, 0, len(follows))
	for _, f := range follows {
		followers = append(followers, fiber.Map{"userId": f.UserID})
	}

	return c.JSON(fiber.Map{"followers": followers})
}

// GetFollowing handles GET /api/v1/user/getFollowing/:userId
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return message(c, statusFailure, "Error occured while fetching followers")
	}

	follows, err := s.followRepo.ListFollowing(c.Context(), uint(userID))
	if err != nil {
		return message(c, statusFailure, "Error occured while fetching followers")
	}

	following := make([]fiber.Map, 0, len(follows))
	for _, f := range follows {
		following = append(following, fiber.Map{"followingId": f.FollowingID})
	}

	return c.JSON(fiber.Map{"following": following})
}

// GetFollowersFollowing handles GET /api/v1/user/getFollowersFollowing/:userId
//
// Both directions of the user's follow edges with the related profile
// summaries embedded.
func (s *Server) GetFollowersFollowing(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return message(c, statusFailure, "Error occured while fetching followers or following")
	}

	followerEdges, err := s.followRepo.ListFollowers(c.Context(), uint(userID))
	if err != nil {
		return message(c, statusFailure, "Error occured while fetching followers or following")
	}
	followingEdges, err := s.followRepo.ListFollowing(c.Context(), uint(userID))
	if err != nil {
		return message(c, statusFailure, "Error occured while fetching followers or following")
	}

	followers := make([]models.UserSummary, 0, len(followerEdges))
	for _, f := range followerEdges {
		if f.User != nil {
			followers = append(followers, f.User.Summary())
		}
	}
	following := make([]models.UserSummary, 0, len(followingEdges))
	for _, f := range followingEdges {
		if f.Following != nil {
			following = append(following, f.Following.Summary())
		}
	}

	return c.JSON(fiber.Map{
		"followers": followers,
		"following": following,
	})
}
