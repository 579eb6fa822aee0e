package auth

import (
	"errors"
	"net/http"

	"leadcrm/internal/config"
	"leadcrm/internal/middleware"
	"leadcrm/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
	cfg     *config.Config
}

func NewHandler(service *Service, cfg *config.Config) *Handler {
	return &Handler{
		service: service,
		cfg:     cfg,
	}
}

// RegisterRoutes wires the auth endpoints. Logout stays outside the
// session middleware: clearing the cookie must succeed even when no
// session is active.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, sessionRequired gin.HandlerFunc) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", sessionRequired, h.Me)
	}
}

// Register — POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and password required")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login — POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token, int(h.cfg.SessionTTL.Seconds()))
	c.JSON(http.StatusOK, toUserResponse(result.User))
}

// Logout — POST /api/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.Message(c, http.StatusOK, "Logged out")
}

// Me — GET /api/auth/me
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetInt64("user_id")

	user, err := h.service.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(h.cfg.CookieSameSite)
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", h.cfg.CookieSecure, true)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingCredentials):
		response.Error(c, http.StatusBadRequest, "Email and password required")
	case errors.Is(err, ErrEmailAlreadyExists):
		response.Error(c, http.StatusConflict, "Email already in use")
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "Not found")
	default:
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Server error")
	}
}
