// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"raptor/internal/config"
	"raptor/internal/database"
	"raptor/internal/middleware"
	"raptor/internal/repository"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// statusFailure is the catch-all failure status the legacy API clients
// expect: most validation, not-found and store errors surface as 411.
const statusFailure = 411

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	raptRepo       repository.RaptRepository
	rippleRepo     repository.RippleRepository
	followRepo     repository.FollowRepository
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	return NewServerWithDeps(cfg, db), nil
}

// NewServerWithDeps creates a Server using an already-initialized database.
// Use this in tests or when a bootstrap layer establishes the DB.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) *Server {
	return &Server{
		config:         cfg,
		db:             db,
		promMiddleware: middleware.InitMetrics("raptor-api"),
		userRepo:       repository.NewUserRepository(db),
		raptRepo:       repository.NewRaptRepository(db),
		rippleRepo:     repository.NewRippleRepository(db),
		followRepo:     repository.NewFollowRepository(db),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "POST, GET, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
		MaxAge:           600,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	app.Get("/health", s.HealthCheck)

	api := app.Group("/api/v1")

	// Auth routes (public)
	auth := api.Group("/auth")
	auth.Post("/signup", s.Signup)
	auth.Post("/login", s.Login)

	// Rapt routes. Public reads first: the specific GET paths must be
	// registered before the generic /:userId/all.
	rapt := api.Group("/rapt")
	rapt.Get("/allLatest", s.GetLatestRapts)
	rapt.Get("/liked/:userId", s.GetLikedRapts)
	rapt.Get("/view/:raptId", s.ViewRapt)
	rapt.Get("/:userId/all", s.GetUserRapts)

	raptAuth := rapt.Group("", s.AuthRequired())
	raptAuth.Post("/create", s.CreateRapt)
	raptAuth.Post("/edit/:raptId", s.EditRapt)
	raptAuth.Delete("/delete/:raptId", s.DeleteRapt)
	raptAuth.Post("/like/:raptId", s.ToggleLikeRapt)

	// Ripple routes (all protected)
	ripple := api.Group("/ripple", s.AuthRequired())
	ripple.Post("/create/:raptId", s.CreateRipple)
	ripple.Get("/view/:raptId", s.GetRipples)
	ripple.Put("/edit/:raptId/:rippleId", s.EditRipple)
	ripple.Delete("/delete/:raptId/:rippleId", s.DeleteRipple)

	// User routes (all protected)
	user := api.Group("/user", s.AuthRequired())
	user.Post("/profile/me", s.IsCurrentUserProfile)
	user.Get("/profile/:userId", s.GetUserProfile)
	user.Post("/followUnfollow/:userToBeFollowedOrUnfollowed", s.FollowUnfollow)
	user.Put("/editProfile", s.EditProfile)
	user.Put("/changePassword", s.ChangePassword)
	user.Get("/getFollowersFollowing/:userId", s.GetFollowersFollowing)
	user.Get("/getFollowers/:userId", s.GetFollowers)
	user.Get("/getFollowing/:userId", s.GetFollowing)

	// Search routes (protected)
	search := api.Group("/search", s.AuthRequired())
	search.Get("/rapts/:query", s.SearchRapts)
	search.Get("/profiles/:query", s.SearchProfiles)
}

// HealthCheck handles health check requests
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	status := fiber.StatusOK
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status": dbStatus,
		"time":   time.Now(),
	})
}

// AuthRequired returns the authentication gate middleware. It verifies the
// Authorization header as a signed token, binds the user ID into the
// request context and otherwise short-circuits with the legacy 403 body.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get("Authorization")
		// Legacy clients send the bare signed token; newer ones prefix
		// it with the Bearer scheme.
		if parts := strings.Split(tokenString, " "); len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}

		userID, ok := s.verifyToken(tokenString)
		if !ok {
			return message(c, fiber.StatusForbidden, "You are not logged in")
		}

		c.Locals("userID", userID)
		return c.Next()
	}
}

// verifyToken validates the signed token and extracts the user ID from
// its subject claim.
func (s *Server) verifyToken(tokenString string) (uint, bool) {
	if tokenString == "" {
		return 0, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, false
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(userID), true
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		return sqlDB.Close()
	}
	return nil
}

// message writes the legacy {"message": ...} JSON body with the given status.
func message(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

// ErrorHandler converts any error that escapes a handler into the
// {"message": ...} envelope, so clients never see a plain-text fault.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "An error occured!"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		msg = fiberErr.Message
	}

	middleware.Logger.Error("unhandled request error",
		"error", err.Error(),
		"path", c.Path(),
		"status", code,
	)
	return message(c, code, msg)
}
