package handlers

import (
	"errors"
	"net/http"

	"github.com/anchalw11/website/internal/metrics"
	"github.com/anchalw11/website/internal/models"
	"github.com/anchalw11/website/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	PlanType string `json:"plan_type" binding:"required"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary Register a new account
// @Description Create a user and return an access token for it
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 201 {object} service.TokenResponse
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.Registrations.WithLabelValues(metrics.OutcomeFailure).Inc()
		RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	response, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		PlanType: models.PlanType(req.PlanType),
	})
	if err != nil {
		metrics.Registrations.WithLabelValues(metrics.OutcomeFailure).Inc()
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			RespondError(c, http.StatusBadRequest, "Email already registered")
		case errors.Is(err, service.ErrUsernameTaken):
			RespondError(c, http.StatusBadRequest, "Username already taken")
		case errors.Is(err, service.ErrInvalidPlan):
			RespondError(c, http.StatusBadRequest, "Invalid plan type")
		default:
			LogAndRespondError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	metrics.Registrations.WithLabelValues(metrics.OutcomeSuccess).Inc()
	c.JSON(http.StatusCreated, response)
}

// Login godoc
// @Summary User login
// @Description Authenticate by email and password and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} service.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Missing email or password")
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeFailure).Inc()
		if errors.Is(err, service.ErrInvalidCredentials) {
			RespondError(c, http.StatusUnauthorized, "Bad email or password")
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	metrics.LoginAttempts.WithLabelValues(metrics.OutcomeSuccess).Inc()
	c.JSON(http.StatusOK, response)
}
