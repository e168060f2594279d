package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/shufflegram/backend/internal/engine"
	"github.com/shufflegram/backend/internal/models"
)

// AuthHandler issues tokens for the admin HTTP surface. Admin identity lives
// in the bot's settings ledger; the API key only gates token issuance.
type AuthHandler struct {
	engine    *engine.Engine
	jwtSecret string
	apiKey    string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(eng *engine.Engine, jwtSecret, apiKey string) *AuthHandler {
	return &AuthHandler{
		engine:    eng,
		jwtSecret: jwtSecret,
		apiKey:    apiKey,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/token", h.Token)
}

// TokenRequest defines the request body for token issuance.
type TokenRequest struct {
	AdminID string `json:"admin_id" validate:"required"`
	APIKey  string `json:"api_key" validate:"required"`
}

// Token issues a JWT for a known admin presenting the configured API key.
func (h *AuthHandler) Token(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if h.apiKey == "" || req.APIKey != h.apiKey {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid API key")
	}
	admin, err := h.engine.IsAdmin(c.Request().Context(), req.AdminID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !admin {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not an admin")
	}

	claims := &models.JwtCustomClaims{
		AdminID: req.AdminID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not sign token")
	}

	return c.JSON(http.StatusOK, map[string]string{"token": signed})
}
