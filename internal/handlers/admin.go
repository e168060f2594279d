package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/shufflegram/backend/internal/engine"
	"github.com/shufflegram/backend/internal/models"
	"github.com/shufflegram/backend/internal/repositories"
)

// AdminHandler exposes the bot's moderation and tuning surface over HTTP.
// Every operation re-checks admin membership in the engine, so a leaked
// token for a demoted admin stops working immediately.
type AdminHandler struct {
	engine           *engine.Engine
	notificationRepo repositories.NotificationRepository
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(eng *engine.Engine, notificationRepo repositories.NotificationRepository) *AdminHandler {
	return &AdminHandler{
		engine:           eng,
		notificationRepo: notificationRepo,
	}
}

// RegisterAdminRoutes registers the admin routes on a JWT-protected group
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/stats", h.Stats)
	g.GET("/settings", h.GetSettings)
	g.PATCH("/settings", h.UpdateSettings)
	g.GET("/reports", h.Reports)
	g.GET("/leaderboard", h.Leaderboard)
	g.POST("/verify", h.Verify)
	g.POST("/ban", h.Ban)
	g.POST("/unban", h.Unban)
	g.POST("/promote", h.Promote)
	g.GET("/notifications/:user_id", h.Notifications)
}

func adminID(c echo.Context) string {
	claims, ok := c.Get("admin").(*models.JwtCustomClaims)
	if !ok {
		return ""
	}
	return claims.AdminID
}

// Stats returns the dashboard counters
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.engine.Dashboard(c.Request().Context(), adminID(c))
	if err != nil {
		return adminError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// GetSettings returns the runtime tunables
func (h *AdminHandler) GetSettings(c echo.Context) error {
	settings, err := h.engine.CurrentSettings(c.Request().Context(), adminID(c))
	if err != nil {
		return adminError(err)
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateSettings applies partial changes to the runtime tunables
func (h *AdminHandler) UpdateSettings(c echo.Context) error {
	var req models.UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	settings, err := h.engine.UpdateSettings(c.Request().Context(), adminID(c), &req)
	if err != nil {
		return adminError(err)
	}
	return c.JSON(http.StatusOK, settings)
}

// Reports returns the report review queue
func (h *AdminHandler) Reports(c echo.Context) error {
	limit := queryInt(c, "limit", 20)
	posts, err := h.engine.ReportQueue(c.Request().Context(), adminID(c), int64(limit))
	if err != nil {
		return adminError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// Leaderboard returns the XP leaderboard with unmasked ids
func (h *AdminHandler) Leaderboard(c echo.Context) error {
	limit := queryInt(c, "limit", 10)
	entries, err := h.engine.Leaderboard(c.Request().Context(), adminID(c), int64(limit))
	if err != nil {
		return adminError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// Verify marks a user verified
func (h *AdminHandler) Verify(c echo.Context) error {
	return h.userAction(c, h.engine.VerifyUser)
}

// Ban bans a user and deletes all their posts
func (h *AdminHandler) Ban(c echo.Context) error {
	return h.userAction(c, h.engine.BanUser)
}

// Unban lifts a user's ban
func (h *AdminHandler) Unban(c echo.Context) error {
	return h.userAction(c, h.engine.UnbanUser)
}

// Promote adds a delegated admin; root admin only
func (h *AdminHandler) Promote(c echo.Context) error {
	return h.userAction(c, h.engine.PromoteAdmin)
}

// Notifications returns the recent delivery log rows for one recipient
func (h *AdminHandler) Notifications(c echo.Context) error {
	if _, err := h.engine.Dashboard(c.Request().Context(), adminID(c)); err != nil {
		return adminError(err)
	}
	limit := queryInt(c, "limit", 50)
	notes, err := h.notificationRepo.RecentByRecipient(c.Param("user_id"), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, notes)
}

func (h *AdminHandler) userAction(c echo.Context, action func(ctx context.Context, adminID, targetID string) error) error {
	var req models.AdminActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := action(c.Request().Context(), adminID(c), req.UserID); err != nil {
		return adminError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "user_id": req.UserID})
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

func adminError(err error) error {
	if errors.Is(err, engine.ErrForbidden) {
		return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
