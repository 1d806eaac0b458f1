package server

import (
	"fmt"
	"strconv"
	"time"

	"raptor/internal/middleware"
	"raptor/internal/models"
	"raptor/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Signup handles POST /api/v1/auth/signup
//
// On success the signed token is returned as the plain-text body, which
// is what the legacy clients parse.
func (s *Server) Signup(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return message(c, statusFailure, "Inputs not correct!")
	}

	if err := validation.ValidateSignup(req.Name, req.Username, req.Email, req.Password); err != nil {
		return message(c, statusFailure, "Inputs not correct!")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return message(c, statusFailure, "error occured!")
	}

	user := &models.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := s.userRepo.Create(c.Context(), user); err != nil {
		// Duplicate username/email surfaces here as a store fault; the
		// legacy API does not distinguish it.
		return message(c, statusFailure, "error occured!")
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return message(c, statusFailure, "error occured!")
	}

	return c.Status(fiber.StatusOK).SendString(token)
}

// Login handles POST /api/v1/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return message(c, statusFailure, "Inputs not correct!")
	}

	user, err := s.userRepo.GetByUsername(c.Context(), req.Username)
	if err != nil {
		middleware.Logger.Error("login lookup failed", "error", err.Error())
		return message(c, statusFailure, "error occured!")
	}
	// One response for unknown username and wrong password; neither
	// field is disclosed.
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).SendString("Invalid credentials!")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).SendString("Invalid credentials!")
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return message(c, statusFailure, "error occured!")
	}

	return c.JSON(fiber.Map{
		"token":  token,
		"userId": user.ID,
	})
}

// generateToken creates a signed token for the given user ID
func (s *Server) generateToken(userID uint) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("token secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": "raptor-api",
		"aud": "raptor-client",
		"exp": now.Add(time.Hour * 24 * 7).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": s.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique token ID
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
