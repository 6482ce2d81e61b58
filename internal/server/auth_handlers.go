package server

import (
	"strconv"
	"time"

	"marketforge/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

// IssueToken exchanges a known identity for a signed Bearer token. The route
// is not mounted while the API is public; it exists so protected routes can
// be switched on without new code (see SetupRoutes).
func (s *Server) IssueToken(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}
	if req.Username == "" || req.Email == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Username and email are required"))
	}

	user, err := s.userRepo.FindOrCreateByEmail(ctx, req.Username, req.Email)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(user.ID), 10),
		"iss": "marketforge-api",
		"aud": "marketforge-client",
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"token":      signed,
		"expires_at": now.Add(tokenTTL),
	})
}
