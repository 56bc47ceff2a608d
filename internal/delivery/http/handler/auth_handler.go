package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techconnect/backend/internal/domain"
	"github.com/techconnect/backend/internal/usecase/auth"
)

type AuthHandler struct {
	authUseCase *auth.AuthUseCase
	devMode     bool
}

// NewAuthHandler creates the auth handler. devMode exposes issued login
// codes in the request-code response; it must stay off outside local
// development.
func NewAuthHandler(authUseCase *auth.AuthUseCase, devMode bool) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		devMode:     devMode,
	}
}

// RequestCode starts an email login
// @Summary Request login code
// @Description Generate a six-digit login code for the email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.RequestCodeRequest true "Email"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/request-code [post]
func (h *AuthHandler) RequestCode(c *gin.Context) {
	var req auth.RequestCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	code, err := h.authUseCase.RequestCode(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "invalid email",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to request code",
		})
		return
	}

	// Mail delivery is out of band. In development the code goes straight
	// back to the client so local setups work without a mail server.
	if h.devMode {
		c.JSON(http.StatusOK, gin.H{
			"message":    "code sent",
			"debug_code": code,
		})
		return
	}

	slog.Info("login code issued", "email", req.Email)
	c.JSON(http.StatusOK, SuccessResponse{
		Message: "code sent",
	})
}

// Verify exchanges a login code for a session token
// @Summary Verify login code
// @Description Verify the code and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.VerifyRequest true "Email, code and optional name"
// @Success 200 {object} auth.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req auth.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	result, err := h.authUseCase.Verify(c.Request.Context(), req.Email, req.Code, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidLoginCode) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error: "invalid or expired code",
			})
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "invalid input",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "login failed",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Me returns current user info
// @Summary Get current user
// @Description Get authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	user, err := h.authUseCase.Me(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get user",
		})
		return
	}

	c.JSON(http.StatusOK, user)
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"message"`
}
