package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techconnect/backend/internal/domain"
	"github.com/techconnect/backend/internal/usecase/profile"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// GetMyProfile handles GET /events/:event_id/profile
// @Summary Get my event profile
// @Description Get the current user's profile for the event
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/{event_id}/profile [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	prof, err := h.profileUseCase.Get(c.Request.Context(), userID.(string), c.Param("event_id"))
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get profile",
		})
		return
	}

	c.JSON(http.StatusOK, prof)
}

// SaveMyProfile handles PUT /events/:event_id/profile
// @Summary Save my event profile
// @Description Create or update the current user's profile for the event
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param request body profile.SaveProfileRequest true "Profile data"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/{event_id}/profile [put]
func (h *ProfileHandler) SaveMyProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	var req profile.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	prof, err := h.profileUseCase.Save(c.Request.Context(), userID.(string), c.Param("event_id"), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to save profile",
		})
		return
	}

	c.JSON(http.StatusOK, prof)
}

// GetAttendee handles GET /events/:event_id/attendees/:user_id
// @Summary Get an attendee's profile
// @Description Get another attendee's visible profile card with connection status
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Param event_id path string true "Event ID"
// @Param user_id path string true "Attendee user ID"
// @Success 200 {object} profile.AttendeeView
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/{event_id}/attendees/{user_id} [get]
func (h *ProfileHandler) GetAttendee(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	view, err := h.profileUseCase.Attendee(c.Request.Context(), userID.(string), c.Param("user_id"), c.Param("event_id"))
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) || errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "attendee not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get attendee",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// VisibilityRequest toggles whether the profile shows up for others.
type VisibilityRequest struct {
	IsVisible *bool `json:"is_visible" binding:"required"`
}

// SetVisibility handles PATCH /events/:event_id/profile/visibility
// @Summary Set profile visibility
// @Description Show or hide the profile in the event's discover list
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param request body VisibilityRequest true "Visibility flag"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/{event_id}/profile/visibility [patch]
func (h *ProfileHandler) SetVisibility(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	var req VisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	err := h.profileUseCase.SetVisibility(c.Request.Context(), userID.(string), c.Param("event_id"), *req.IsVisible)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to update visibility",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "visibility updated",
	})
}
